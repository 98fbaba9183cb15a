package domain

// Recommendation is an item suggested because friends own it.
type Recommendation struct {
	Item        Item     `json:"item"`
	FriendCount int      `json:"friend_count"`
	FriendNames []string `json:"friend_names"`
	Reason      string   `json:"reason"`
}

// AlsoBought is an item frequently owned together with a target item.
type AlsoBought struct {
	Item         Item     `json:"item"`
	CoOwnerCount int      `json:"co_owner_count"`
	OwnerNames   []string `json:"owner_names"`
}

// PopularTag is a tag ranked by its presence among a person's friends' items.
type PopularTag struct {
	Tag         string   `json:"tag"`
	ItemCount   int      `json:"item_count"`
	FriendCount int      `json:"friend_count"`
	FriendNames []string `json:"friend_names"`
}

// Buddy is a person who is not yet a friend but owns many of the same items.
type Buddy struct {
	Person       Person   `json:"person"`
	SharedCount  int      `json:"shared_count"`
	SharedTitles []string `json:"shared_titles"`
}

// SimilarItem is an item sharing tags with a target item.
type SimilarItem struct {
	Item           Item     `json:"item"`
	SharedTagCount int      `json:"shared_tag_count"`
	SharedTags     []string `json:"shared_tags"`
}
