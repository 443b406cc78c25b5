package main

import (
	"fmt"
	"sort"

	"github.com/mkohler/coincidence"
	"golang.org/x/sync/errgroup"
)

// maxRedrawAttempts bounds how many times compare redraws the second
// article when Special:Random lands on the same article twice.
const maxRedrawAttempts = 3

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	if len(c.Title) != 0 && len(c.Title) != 2 {
		return coincidence.Errorf(coincidence.EINVALID, "--title must be given exactly twice, got %d", len(c.Title))
	}

	var a, b *coincidence.Article
	var err error
	if len(c.Title) == 2 {
		fmt.Fprintf(deps.Stdout, "Requesting articles %q and %q...\n", c.Title[0], c.Title[1])
		a, b, err = fetchPair(deps, c.Title[0], c.Title[1])
	} else {
		fmt.Fprintln(deps.Stdout, "Requesting two random Wikipedia articles...")
		a, b, err = fetchRandomPair(deps)
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: Unable to retrieve articles, %s\n", coincidence.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "  Title: %s\n", a.Title)
	fmt.Fprintf(deps.Stdout, "  Title: %s\n", b.Title)

	fmt.Fprintln(deps.Stdout, "Computing longest common substring(s) in articles...")

	subs := coincidence.LongestCommonSubstrings(
		coincidence.StripMarkup(a.Text),
		coincidence.StripMarkup(b.Text),
	)
	if len(subs) == 0 {
		fmt.Fprintln(deps.Stdout, "No common substring found.")
		return nil
	}

	// The engine's order is unspecified; sort for stable output.
	sort.Strings(subs)
	for _, s := range subs {
		fmt.Fprintf(deps.Stdout, "sequence: %q\n", s)
	}

	return nil
}

// fetchPair retrieves two named articles concurrently.
func fetchPair(deps *Dependencies, title1, title2 string) (*coincidence.Article, *coincidence.Article, error) {
	var a, b *coincidence.Article

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		var err error
		a, err = deps.Source.ByTitle(ctx, title1)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = deps.Source.ByTitle(ctx, title2)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// fetchRandomPair retrieves two random articles concurrently, redrawing
// the second a few times if the random endpoint returns the same article
// for both. If the draws still collide the pair is returned as-is.
func fetchRandomPair(deps *Dependencies) (*coincidence.Article, *coincidence.Article, error) {
	var a, b *coincidence.Article

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.Go(func() error {
		var err error
		a, err = deps.Source.Random(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = deps.Source.Random(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	for attempt := 0; a.Fingerprint() == b.Fingerprint() && attempt < maxRedrawAttempts; attempt++ {
		redrawn, err := deps.Source.Random(deps.Ctx)
		if err != nil {
			return nil, nil, err
		}
		b = redrawn
	}

	return a, b, nil
}
