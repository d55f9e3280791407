// Package qonqr provides a client for the Qonqr public zones API.
//
// Qonqr is a location-based strategy game in which three factions fight
// for control of real-world zones. This package implements a typed Go
// client for the read-only zone status endpoints.
//
// # Architecture
//
// The package is organized into several components:
//
//   - Client: the API client; one GET per operation, credentials as headers
//   - Types: domain models (zones, factions, grid references and areas)
//   - ZoneList: an indexable zone sequence with independent iterators
//   - Errors: sentinel argument errors plus RequestError for remote failures
//
// # Usage
//
// Create a client with your application key and 32-character secret:
//
//	logger := zerolog.New(os.Stdout)
//	client, err := qonqr.NewClient("your-app-key", "your-32-character-app-secret!!!!", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	zone, err := client.ZoneStatus(ctx, 2386)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(zone.Name, zone.ControlState)
//
// Collection endpoints return a ZoneList. Iterate with a fresh cursor:
//
//	list, err := client.ZonesByBoundingBox(ctx, 36.1, -84.2, 36.0, -84.0)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for it := list.Iter(); it.Next(); {
//		fmt.Println(it.Zone().Name)
//	}
//
// # Error Handling
//
// Argument problems surface as sentinel errors (ErrMissingAPIKey,
// ErrInvalidAPISecret, ErrInvalidGridReference, ErrClientClosed) before any
// network call. Transport and decode failures are wrapped in a
// *RequestError carrying the logical request context; the original cause is
// available through errors.Unwrap:
//
//	var reqErr *qonqr.RequestError
//	if errors.As(err, &reqErr) {
//		log.Printf("%s failed: %v", reqErr.Op, reqErr.Err)
//	}
//
// The client does not retry, cache, or classify causes further.
package qonqr
