// Package content holds the static copy and sample data shown by Pulse.
// Everything is compiled in from catalog.toml.
package content

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var catalogTOML []byte

// Catalog is the full set of sample content.
type Catalog struct {
	Product      string        `toml:"product"`
	Tagline      string        `toml:"tagline"`
	Badges       []string      `toml:"badges"`
	Features     []Feature     `toml:"features"`
	CardClients  []CardClient  `toml:"card_clients"`
	RateCard     RateCard      `toml:"rate_card"`
	HowItWorks   HowItWorks    `toml:"how_it_works"`
	Testimonials []Testimonial `toml:"testimonials"`
	Integrations []Integration `toml:"integrations"`
	Pricing      Pricing       `toml:"pricing"`
	FAQs         []FAQ         `toml:"faqs"`
	Dashboard    Dashboard     `toml:"dashboard"`
	Platforms    []Platform    `toml:"platforms"`
	Legal        Legal         `toml:"legal"`
}

// Feature is one slide of the landing page carousel.
type Feature struct {
	ID          string `toml:"id"`
	Title       string `toml:"title"`
	Description string `toml:"description"`
	Stat        string `toml:"stat"`
	StatLabel   string `toml:"stat_label"`
}

// CardClient is a row of the client-intelligence card.
type CardClient struct {
	Name   string `toml:"name"`
	Amount int    `toml:"amount"`
	Pct    int    `toml:"pct"`
}

// RateCard holds the before/after hourly rates on the rate card.
type RateCard struct {
	Before int `toml:"before"`
	After  int `toml:"after"`
}

// HowItWorks is the three-step onboarding walkthrough and the sample
// figures drawn beside each step.
type HowItWorks struct {
	Heading     string   `toml:"heading"`
	Subtext     string   `toml:"subtext"`
	Steps       []Step   `toml:"steps"`
	Sources     []string `toml:"sources"`
	MonthTotal  int      `toml:"month_total"`
	MonthChange int      `toml:"month_change"`
	Bars        []int    `toml:"bars"`
	GoalPct     int      `toml:"goal_pct"`
	Predicted   int      `toml:"predicted"`
	AvgRate     int      `toml:"avg_rate"`
	TopClient   string   `toml:"top_client"`
}

type Step struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

type Testimonial struct {
	Quote  string `toml:"quote"`
	Name   string `toml:"name"`
	Role   string `toml:"role"`
	Avatar string `toml:"avatar"`
}

type Integration struct {
	Name  string `toml:"name"`
	Color string `toml:"color"`
}

// Pricing is the plan table. YearlyDiscount is the percentage shown on the
// yearly billing toggle.
type Pricing struct {
	Heading        string `toml:"heading"`
	Subtext        string `toml:"subtext"`
	YearlyDiscount int    `toml:"yearly_discount"`
	Plans          []Plan `toml:"plans"`
}

type Plan struct {
	Name        string   `toml:"name"`
	Monthly     int      `toml:"monthly"`
	Yearly      int      `toml:"yearly"`
	Description string   `toml:"description"`
	Button      string   `toml:"button"`
	Popular     bool     `toml:"popular"`
	Inherits    string   `toml:"inherits"`
	Features    []string `toml:"features"`
}

// Price returns the plan's price and billing period. Free plans are
// billed "forever" whichever toggle is set.
func (p Plan) Price(yearly bool) (int, string) {
	if p.Monthly == 0 && p.Yearly == 0 {
		return 0, "forever"
	}
	if yearly {
		return p.Yearly, "year"
	}
	return p.Monthly, "month"
}

type FAQ struct {
	Question string `toml:"question"`
	Answer   string `toml:"answer"`
}

// Dashboard is the sample account behind the dashboard mock.
type Dashboard struct {
	Greeting       string       `toml:"greeting"`
	Initials       string       `toml:"initials"`
	MonthChange    int          `toml:"month_change"`
	Predicted      int          `toml:"predicted"`
	PendingClients int          `toml:"pending_clients"`
	AvgRate        int          `toml:"avg_rate"`
	AvgRateChange  int          `toml:"avg_rate_change"`
	Insight        string       `toml:"insight"`
	Revenue        []MonthTotal `toml:"revenue"`
	Clients        []Client     `toml:"clients"`
	Payments       []Payment    `toml:"payments"`
}

type MonthTotal struct {
	Month  string `toml:"month"`
	Amount int    `toml:"amount"`
}

type Client struct {
	Name     string `toml:"name"`
	Revenue  int    `toml:"revenue"`
	Projects int    `toml:"projects"`
	Color    string `toml:"color"`
}

type Payment struct {
	Client string `toml:"client"`
	Amount int    `toml:"amount"`
	Date   string `toml:"date"`
	Source string `toml:"source"`
}

// Platform is a connectable source on the onboarding screen.
type Platform struct {
	ID   string `toml:"id"`
	Name string `toml:"name"`
}

type Legal struct {
	Privacy Document `toml:"privacy"`
	Terms   Document `toml:"terms"`
}

type Document struct {
	Title    string    `toml:"title"`
	Updated  string    `toml:"updated"`
	Sections []Section `toml:"sections"`
}

type Section struct {
	Heading string `toml:"heading"`
	Body    string `toml:"body"`
}

// Load parses the embedded catalog.
func Load() (Catalog, error) {
	return Parse(catalogTOML)
}

// Parse decodes and validates a catalog.
func Parse(data []byte) (Catalog, error) {
	var c Catalog
	if err := toml.Unmarshal(data, &c); err != nil {
		return Catalog{}, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog: %w", err)
	}
	return c, nil
}

func (c Catalog) validate() error {
	var errs []error
	if len(c.Features) == 0 {
		errs = append(errs, errors.New("no features"))
	}
	if len(c.Testimonials) == 0 {
		errs = append(errs, errors.New("no testimonials"))
	}
	plans := make(map[string]bool, len(c.Pricing.Plans))
	for _, p := range c.Pricing.Plans {
		if p.Inherits != "" && !plans[p.Inherits] {
			errs = append(errs, fmt.Errorf("plan %q inherits unknown plan %q", p.Name, p.Inherits))
		}
		plans[p.Name] = true
	}
	seen := make(map[string]bool, len(c.Features))
	for i, f := range c.Features {
		id := strings.TrimSpace(f.ID)
		if id == "" {
			errs = append(errs, fmt.Errorf("feature %d has no id", i))
			continue
		}
		if seen[id] {
			errs = append(errs, fmt.Errorf("duplicate feature id %q", id))
		}
		seen[id] = true
	}
	return errors.Join(errs...)
}

// Text renders a legal document as plain paragraphs.
func (d Document) Text() string {
	var b strings.Builder
	b.WriteString(d.Title)
	b.WriteString("\n")
	if d.Updated != "" {
		b.WriteString("Last updated: ")
		b.WriteString(d.Updated)
		b.WriteString("\n")
	}
	for _, s := range d.Sections {
		b.WriteString("\n")
		b.WriteString(s.Heading)
		b.WriteString("\n")
		b.WriteString(s.Body)
		b.WriteString("\n")
	}
	return b.String()
}
