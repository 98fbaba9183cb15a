package bonfire

import (
	"github.com/kailas-cloud/bonfire/internal/domain"
	reconcileuc "github.com/kailas-cloud/bonfire/internal/usecase/reconcile"
)

// Records.
type (
	Item        = domain.Item
	ItemPatch   = domain.ItemPatch
	Person      = domain.Person
	PersonPatch = domain.PersonPatch
	Address     = domain.Address
	Review      = domain.Review
	ReviewPatch = domain.ReviewPatch
	Publisher   = domain.Publisher
	Transaction = domain.Transaction
)

// PublisherPatch is a partial publisher update.
type PublisherPatch = domain.PublisherPatch

// Purchases.
type (
	PurchaseRequest = domain.PurchaseRequest
	Receipt         = domain.Receipt
	Warning         = domain.Warning
	Warnings        = domain.Warnings
)

// Graph-derived results.
type (
	Recommendation = domain.Recommendation
	AlsoBought     = domain.AlsoBought
	PopularTag     = domain.PopularTag
	Buddy          = domain.Buddy
	SimilarItem    = domain.SimilarItem
)

// Aggregations.
type (
	TopRatedItem     = domain.TopRatedItem
	PublisherRevenue = domain.PublisherRevenue
	PlatformStat     = domain.PlatformStat
	SpendingSummary  = domain.SpendingSummary
)

// Page is one window of a listing.
type Page[T any] = domain.Page[T]

// ReconcileReport describes one reconciliation sweep.
type ReconcileReport = reconcileuc.Report

// WarningGraphSyncFailed marks a write whose graph side did not apply.
const WarningGraphSyncFailed = domain.WarningGraphSyncFailed
