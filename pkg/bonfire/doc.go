// Package bonfire embeds the bonfire catalog in a Go program without the
// HTTP server: the same document store, relationship graph and services,
// called in-process.
//
//	client, err := bonfire.New(ctx,
//	    bonfire.WithValkey("localhost:6379", ""),
//	    bonfire.WithNeo4j("neo4j://localhost:7687", "neo4j", "secret", "neo4j"),
//	)
//	defer client.Close(ctx)
//
//	hades, _, _ := client.Items().Create(ctx, bonfire.Item{Title: "Hades", Price: 24.99})
//	receipt, _ := client.Purchases().Buy(ctx, bonfire.PurchaseRequest{PersonID: alice.ID, ItemID: hades.ID})
//	recs, _ := client.Persons().Recommendations(ctx, bob.ID, 10)
//
// WithInMemory runs both stores in process, which is handy in tests.
package bonfire
