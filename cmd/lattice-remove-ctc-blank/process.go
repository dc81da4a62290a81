package main

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlfst/ctc"
	"github.com/katalvlaran/lvlfst/fst"
	"github.com/katalvlaran/lvlfst/table"
)

// entry is one keyed lattice handed from the reader to the workers.
type entry struct {
	key string
	lat *table.Lattice
}

// process streams the input table through validation and blank removal
// into the output table.
//
// The reader is sequential; collapsing is pure per lattice, so entries
// fan out to jobs workers and results are written under a mutex in
// completion order. Any failure cancels the remaining work and is
// returned; keys in lattice errors identify the offending entry.
func process(ctx context.Context, log *slog.Logger, blank fst.Label, inSpec, outSpec string, jobs int) error {
	reader, err := table.OpenReader(inSpec)
	if err != nil {
		return fmt.Errorf("input %s: %w", inSpec, err)
	}
	defer reader.Close()

	writer, err := table.OpenWriter(outSpec)
	if err != nil {
		return fmt.Errorf("output %s: %w", outSpec, err)
	}

	start := time.Now()
	var done int
	var mu sync.Mutex // guards writer and done

	g, ctx := errgroup.WithContext(ctx)
	entries := make(chan entry)

	// Producer: decode entries in table order.
	g.Go(func() error {
		defer close(entries)
		for reader.Next() {
			lat, lerr := reader.Lattice()
			if lerr != nil {
				return lerr
			}
			select {
			case entries <- entry{key: reader.Key(), lat: lat}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		return reader.Err()
	})

	// Workers: validate, collapse, write.
	for i := 0; i < jobs; i++ {
		g.Go(func() error {
			for e := range entries {
				out, perr := collapseOne(e, blank)
				if perr != nil {
					return perr
				}
				mu.Lock()
				werr := writer.Write(e.key, out)
				done++
				mu.Unlock()
				if werr != nil {
					return werr
				}
				log.Debug("lattice processed", "key", e.key,
					"states_in", e.lat.NumStates(), "states_out", out.NumStates())
			}

			return nil
		})
	}

	err = g.Wait()
	if cerr := writer.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	log.Info("table processed", "lattices", done, "elapsed", time.Since(start))

	return nil
}

// collapseOne enforces the acceptor/acyclic contract for one entry and
// applies the collapse.
func collapseOne(e entry, blank fst.Label) (*table.Lattice, error) {
	if !e.lat.IsAcceptor() {
		return nil, fmt.Errorf("lattice %q is not an acceptor", e.key)
	}
	if !e.lat.IsAcyclic() {
		return nil, fmt.Errorf("lattice %q is not acyclic", e.key)
	}
	out, err := ctc.RemoveBlank(e.lat, blank)
	if err != nil {
		return nil, fmt.Errorf("lattice %q: %w", e.key, err)
	}

	return out, nil
}
