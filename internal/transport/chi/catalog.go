package chi

import (
	"net/http"

	gen "github.com/kailas-cloud/bonfire/internal/transport/generated"
)

// --- items ---

// CreateItem handles POST /api/items.
func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateItemJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	it, warnings, err := s.catalog.CreateItem(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, gen.ItemMutation{Data: it, Warnings: warnings})
}

// ListItems handles GET /api/items.
func (s *Server) ListItems(w http.ResponseWriter, r *http.Request, params gen.ListItemsParams) {
	page, err := s.catalog.ListItems(r.Context(), intParam(params.Limit), intParam(params.Offset))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetItem handles GET /api/items/{id}.
func (s *Server) GetItem(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	it, err := s.catalog.GetItem(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, it)
}

// UpdateItem handles PATCH /api/items/{id}.
func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	var patch gen.UpdateItemJSONRequestBody
	if !decodeBody(w, r, &patch) {
		return
	}
	it, warnings, err := s.catalog.UpdateItem(r.Context(), id, patch)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, gen.ItemMutation{Data: it, Warnings: warnings})
}

// DeleteItem handles DELETE /api/items/{id}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	warnings, err := s.catalog.DeleteItem(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeDeleted(w, warnings)
}

// --- persons ---

// CreatePerson handles POST /api/persons.
func (s *Server) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req gen.CreatePersonJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	p, warnings, err := s.catalog.CreatePerson(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, gen.PersonMutation{Data: p, Warnings: warnings})
}

// ListPersons handles GET /api/persons.
func (s *Server) ListPersons(w http.ResponseWriter, r *http.Request, params gen.ListPersonsParams) {
	page, err := s.catalog.ListPersons(r.Context(), intParam(params.Limit), intParam(params.Offset))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetPerson handles GET /api/persons/{id}.
func (s *Server) GetPerson(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	p, err := s.catalog.GetPerson(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdatePerson handles PATCH /api/persons/{id}.
func (s *Server) UpdatePerson(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	var patch gen.UpdatePersonJSONRequestBody
	if !decodeBody(w, r, &patch) {
		return
	}
	p, err := s.catalog.UpdatePerson(r.Context(), id, patch)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePerson handles DELETE /api/persons/{id}.
func (s *Server) DeletePerson(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	warnings, err := s.catalog.DeletePerson(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeDeleted(w, warnings)
}

// AddFriend handles POST /api/persons/{id}/friends.
func (s *Server) AddFriend(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	var req gen.AddFriendJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	if err := s.catalog.AddFriend(r.Context(), id, req.FriendId); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveFriend handles DELETE /api/persons/{id}/friends/{friendID}.
func (s *Server) RemoveFriend(w http.ResponseWriter, r *http.Request, id gen.RecordId, friendID gen.FriendId) {
	err := s.catalog.RemoveFriend(r.Context(), id, friendID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RevokeOwnership handles DELETE /api/persons/{id}/library/{itemID}.
func (s *Server) RevokeOwnership(w http.ResponseWriter, r *http.Request, id gen.RecordId, itemID gen.ItemId) {
	err := s.catalog.RevokeOwnership(r.Context(), id, itemID)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- reviews ---

// CreateReview handles POST /api/reviews.
func (s *Server) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req gen.CreateReviewJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	rev, err := s.catalog.CreateReview(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rev)
}

// ListReviews handles GET /api/reviews.
func (s *Server) ListReviews(w http.ResponseWriter, r *http.Request, params gen.ListReviewsParams) {
	page, err := s.catalog.ListReviews(r.Context(), intParam(params.Limit), intParam(params.Offset))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetReview handles GET /api/reviews/{id}.
func (s *Server) GetReview(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	rev, err := s.catalog.GetReview(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

// UpdateReview handles PATCH /api/reviews/{id}.
func (s *Server) UpdateReview(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	var patch gen.UpdateReviewJSONRequestBody
	if !decodeBody(w, r, &patch) {
		return
	}
	rev, err := s.catalog.UpdateReview(r.Context(), id, patch)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rev)
}

// DeleteReview handles DELETE /api/reviews/{id}.
func (s *Server) DeleteReview(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	if err := s.catalog.DeleteReview(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- publishers ---

// CreatePublisher handles POST /api/publishers.
func (s *Server) CreatePublisher(w http.ResponseWriter, r *http.Request) {
	var req gen.CreatePublisherJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := s.catalog.CreatePublisher(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// ListPublishers handles GET /api/publishers.
func (s *Server) ListPublishers(w http.ResponseWriter, r *http.Request, params gen.ListPublishersParams) {
	page, err := s.catalog.ListPublishers(r.Context(), intParam(params.Limit), intParam(params.Offset))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetPublisher handles GET /api/publishers/{id}.
func (s *Server) GetPublisher(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	p, err := s.catalog.GetPublisher(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdatePublisher handles PATCH /api/publishers/{id}.
func (s *Server) UpdatePublisher(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	var patch gen.UpdatePublisherJSONRequestBody
	if !decodeBody(w, r, &patch) {
		return
	}
	p, err := s.catalog.UpdatePublisher(r.Context(), id, patch)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePublisher handles DELETE /api/publishers/{id}.
func (s *Server) DeletePublisher(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	if err := s.catalog.DeletePublisher(r.Context(), id); err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- transactions ---

// Purchase handles POST /api/transactions.
func (s *Server) Purchase(w http.ResponseWriter, r *http.Request) {
	var req gen.PurchaseJSONRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	receipt, err := s.catalog.Purchase(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, receipt)
}

// ListTransactions handles GET /api/transactions.
func (s *Server) ListTransactions(w http.ResponseWriter, r *http.Request, params gen.ListTransactionsParams) {
	page, err := s.catalog.ListTransactions(r.Context(), intParam(params.Limit), intParam(params.Offset))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// GetTransaction handles GET /api/transactions/{id}.
func (s *Server) GetTransaction(w http.ResponseWriter, r *http.Request, id gen.RecordId) {
	tx, err := s.catalog.GetTransaction(r.Context(), id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tx)
}
