package chi

import (
	"net/http"

	gen "github.com/kailas-cloud/bonfire/internal/transport/generated"
)

// Recommendations handles GET /api/persons/{id}/recommendations.
func (s *Server) Recommendations(w http.ResponseWriter, r *http.Request, id gen.RecordId, params gen.RecommendationsParams) {
	out, err := s.join.FriendRecommendations(r.Context(), id, intParam(params.Limit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// PopularTags handles GET /api/persons/{id}/popular-tags.
func (s *Server) PopularTags(w http.ResponseWriter, r *http.Request, id gen.RecordId, params gen.PopularTagsParams) {
	out, err := s.join.PopularTags(r.Context(), id, intParam(params.Limit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// GamingBuddies handles GET /api/persons/{id}/buddies.
func (s *Server) GamingBuddies(w http.ResponseWriter, r *http.Request, id gen.RecordId, params gen.GamingBuddiesParams) {
	out, err := s.join.GamingBuddies(r.Context(), id, intParam(params.Limit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// ListFriends handles GET /api/persons/{id}/friends.
func (s *Server) ListFriends(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	out, err := s.join.Friends(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Library handles GET /api/persons/{id}/library.
func (s *Server) Library(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	out, err := s.join.Library(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// AlsoBought handles GET /api/items/{id}/also-bought.
func (s *Server) AlsoBought(w http.ResponseWriter, r *http.Request, id gen.RecordId, params gen.AlsoBoughtParams) {
	out, err := s.join.AlsoBought(r.Context(), id, intParam(params.Limit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// SimilarItems handles GET /api/items/{id}/similar.
func (s *Server) SimilarItems(w http.ResponseWriter, r *http.Request, id gen.RecordId, params gen.SimilarItemsParams) {
	out, err := s.join.SimilarByTags(r.Context(), id, intParam(params.Limit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// TopRated handles GET /api/items/top-rated.
func (s *Server) TopRated(w http.ResponseWriter, r *http.Request, params gen.TopRatedParams) {
	out, err := s.analytics.TopRated(r.Context(), intParam(params.Limit))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// PlatformStats handles GET /api/items/platform-stats.
func (s *Server) PlatformStats(w http.ResponseWriter, r *http.Request) {
	out, err := s.analytics.PlatformStats(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// PublisherRevenue handles GET /api/publishers/revenue.
func (s *Server) PublisherRevenue(w http.ResponseWriter, r *http.Request) {
	out, err := s.analytics.RevenuePerPublisher(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

// Spending handles GET /api/persons/{id}/spending.
func (s *Server) Spending(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	out, err := s.analytics.PersonSpending(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}
