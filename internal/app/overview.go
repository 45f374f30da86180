package app

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/adimsa/sinyal/internal/gateway"
	"github.com/adimsa/sinyal/internal/state"
)

// RefreshOverview performs one dashboard load: summary, families, segments,
// packages and redeemables fetched concurrently and joined all-or-nothing.
// If any request fails the whole refresh fails, the store keeps its previous
// data, and the error is recorded; partial results are never stored.
func RefreshOverview(ctx context.Context, client *gateway.Client, subsType string, store *state.Store) error {
	var overview state.Overview

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := client.Summary(ctx)
		if err != nil {
			return err
		}
		overview.Summary = *summary
		return nil
	})
	g.Go(func() error {
		families, err := client.StoreFamilies(ctx, subsType, false)
		if err != nil {
			return err
		}
		overview.Families = families
		return nil
	})
	g.Go(func() error {
		segments, err := client.StoreSegments(ctx)
		if err != nil {
			return err
		}
		overview.Segments = segments
		return nil
	})
	g.Go(func() error {
		packages, err := client.StorePackages(ctx, subsType, false)
		if err != nil {
			return err
		}
		overview.Packages = packages
		return nil
	})
	g.Go(func() error {
		redeemables, err := client.Redeemables(ctx)
		if err != nil {
			return err
		}
		overview.Redeemables = redeemables
		return nil
	})

	if err := g.Wait(); err != nil {
		store.Update(nil, err)
		log.Printf("overview refresh failed: %v", err)
		return err
	}
	store.Update(&overview, nil)
	return nil
}
