package advisor

import (
	"context"
	"sync"
	"testing"

	"github.com/lzhou/pyrostock"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want Kind
	}{
		{Warning, Warning},
		{Info, Info},
		{Success, Success},
		{Kind("critical"), Info},
		{Kind(""), Info},
	}
	for _, c := range cases {
		if got := normalize(c.in); got != c.want {
			t.Errorf("normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFallback_isSingleWarning(t *testing.T) {
	insights := fallback(context.DeadlineExceeded)
	if len(insights) != 1 {
		t.Fatalf("fallback returned %d insights, want 1", len(insights))
	}
	if insights[0].Kind != Warning {
		t.Errorf("fallback kind = %q, want %q", insights[0].Kind, Warning)
	}
	if insights[0].Title == "" || insights[0].Content == "" {
		t.Errorf("fallback insight is missing title or content: %+v", insights[0])
	}
}

func TestSummarize(t *testing.T) {
	items := []pyrostock.Item{{
		Name:         "Fairy Wand Sparkler",
		Category:     pyrostock.Sparklers,
		Quantity:     200,
		MinThreshold: 50,
		Safety:       pyrostock.SafetyLow,
		Price:        pyrostock.M(5, pyrostock.DefaultCurrency),
		Cost:         pyrostock.M(1.5, pyrostock.DefaultCurrency),
	}}
	s := summarize(items)
	if len(s) != 1 {
		t.Fatalf("summarize returned %d entries, want 1", len(s))
	}
	got := s[0]
	if got.Name != "Fairy Wand Sparkler" || got.Category != "sparklers" {
		t.Errorf("unexpected identity fields: %+v", got)
	}
	if got.Quantity != 200 || got.MinThreshold != 50 {
		t.Errorf("unexpected stock fields: %+v", got)
	}
	if got.Retail != 5 || got.Cost != 1.5 {
		t.Errorf("unexpected price fields: %+v", got)
	}
}

// TestRefresh_latestWins starts two overlapping refreshes and checks that
// only the second delivers.
func TestRefresh_latestWins(t *testing.T) {
	release := make(chan struct{})
	var calls sync.WaitGroup

	r := &Refresher{}
	r.Request = func(ctx context.Context, items []pyrostock.Item) []Insight {
		defer calls.Done()
		title := items[0].Name
		if title == "first" {
			// Hold the first request until the second has been started.
			<-release
		}
		return []Insight{{Title: title, Kind: Info}}
	}

	var mu sync.Mutex
	var delivered []string
	deliver := func(in []Insight) {
		mu.Lock()
		delivered = append(delivered, in[0].Title)
		mu.Unlock()
	}

	calls.Add(2)
	r.Refresh(context.Background(), []pyrostock.Item{{Name: "first"}}, deliver)
	r.Refresh(context.Background(), []pyrostock.Item{{Name: "second"}}, deliver)
	close(release)
	calls.Wait()

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 1 || delivered[0] != "second" {
		t.Errorf("delivered %v, want only the second refresh", delivered)
	}
}

func TestRefresh_cancelsPrevious(t *testing.T) {
	var calls sync.WaitGroup

	r := &Refresher{}
	canceled := make(chan struct{})
	r.Request = func(ctx context.Context, items []pyrostock.Item) []Insight {
		defer calls.Done()
		if items[0].Name == "first" {
			<-ctx.Done()
			close(canceled)
		}
		return nil
	}

	calls.Add(2)
	r.Refresh(context.Background(), []pyrostock.Item{{Name: "first"}}, func([]Insight) {})
	r.Refresh(context.Background(), []pyrostock.Item{{Name: "second"}}, func([]Insight) {})
	calls.Wait()

	select {
	case <-canceled:
	default:
		t.Error("first request context was not canceled by the second refresh")
	}
}

func TestStop_discardsInFlight(t *testing.T) {
	var calls sync.WaitGroup

	r := &Refresher{}
	r.Request = func(ctx context.Context, items []pyrostock.Item) []Insight {
		defer calls.Done()
		<-ctx.Done()
		return []Insight{{Title: "late", Kind: Info}}
	}

	deliveredCh := make(chan struct{}, 1)
	calls.Add(1)
	r.Refresh(context.Background(), nil, func([]Insight) { deliveredCh <- struct{}{} })
	r.Stop()
	calls.Wait()

	select {
	case <-deliveredCh:
		t.Error("stopped refresh still delivered its result")
	default:
	}
}
