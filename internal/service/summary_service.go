package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/nestworth/nestworth-backend/internal/domain"
)

// Summary sources
const (
	SummarySourceLLM      = "llm"
	SummarySourceTemplate = "template"
)

const planSummarySystemPrompt = "You are a warm, practical financial planning assistant for expecting parents. " +
	"Write a short, encouraging summary of the family's five-year cost projection in plain language. " +
	"Use at most three paragraphs, mention concrete dollar figures, and do not give investment advice."

const assumptionsSystemPrompt = "You are a financial planning assistant for expecting parents. " +
	"Explain in plain language which cost assumptions were applied to this family's projection and why. " +
	"Keep it under two paragraphs and do not invent numbers that are not provided."

// CompletionClient generates text from a system and user prompt.
// *openai.Client satisfies it.
type CompletionClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// SummaryResult is a generated narrative with its provenance
type SummaryResult struct {
	Text        string    `json:"text"`
	Source      string    `json:"source"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// SummaryService turns a projection into narrative text. With a completion
// client configured it asks the model first and falls back to a deterministic
// template on any failure; without one it always uses the template.
type SummaryService struct {
	projectionSvc *ProjectionService
	client        CompletionClient
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(projectionSvc *ProjectionService) *SummaryService {
	return &SummaryService{projectionSvc: projectionSvc}
}

// SetCompletionClient sets the LLM client used for narrative generation
func (s *SummaryService) SetCompletionClient(client CompletionClient) {
	s.client = client
}

// Generate produces a narrative summary of the user's projection. Custom
// instructions are passed through to the model only; the template fallback
// ignores them.
func (s *SummaryService) Generate(ctx context.Context, userID uuid.UUID, customInstructions string) (*SummaryResult, error) {
	projection, err := s.projectionSvc.Get(userID)
	if err != nil {
		return nil, err
	}

	prompt := summaryPrompt(projection)
	if instructions := strings.TrimSpace(customInstructions); instructions != "" {
		prompt += "Additional instructions from the user: " + instructions + "\n"
	}

	return s.produce(ctx, planSummarySystemPrompt, prompt, func() string {
		return templateSummary(projection)
	}), nil
}

// ExplainAssumptions produces a narrative of the cost assumptions behind the
// user's projection
func (s *SummaryService) ExplainAssumptions(ctx context.Context, userID uuid.UUID) (*SummaryResult, error) {
	projection, err := s.projectionSvc.Get(userID)
	if err != nil {
		return nil, err
	}
	return s.produce(ctx, assumptionsSystemPrompt, assumptionsPrompt(projection), func() string {
		return templateAssumptions(projection)
	}), nil
}

func (s *SummaryService) produce(ctx context.Context, systemPrompt, userPrompt string, fallback func() string) *SummaryResult {
	if s.client != nil {
		text, err := s.client.Complete(ctx, systemPrompt, userPrompt)
		if err == nil {
			return &SummaryResult{Text: text, Source: SummarySourceLLM, GeneratedAt: time.Now().UTC()}
		}
		log.Warn().Err(err).Msg("Summary generation fell back to template")
	}
	return &SummaryResult{Text: fallback(), Source: SummarySourceTemplate, GeneratedAt: time.Now().UTC()}
}

// summaryPrompt lays out the projection's key figures for the model
func summaryPrompt(p *domain.Projection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Region: %s (%s cost band)\n", p.Assumptions.Region, p.Assumptions.CostBand)
	fmt.Fprintf(&b, "Total five-year cost: %s\n", formatDollars(p.TotalCost))
	fmt.Fprintf(&b, "Starting savings: %s\n", formatDollars(p.Profile.CurrentSavings))
	fmt.Fprintf(&b, "Lowest projected savings: %s\n", formatDollars(lowestSavings(p.Monthly)))
	fmt.Fprintf(&b, "Savings after five years: %s\n", formatDollars(p.Yearly[len(p.Yearly)-1].EndingSavings))
	fmt.Fprintf(&b, "Childcare: %s\n", childcareLine(p))
	if len(p.Warnings) == 0 {
		b.WriteString("Warnings: none\n")
	} else {
		for _, w := range p.Warnings {
			fmt.Fprintf(&b, "Warning (%s): %s\n", w.Severity, w.Title)
		}
	}
	return b.String()
}

func assumptionsPrompt(p *domain.Projection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Postal code: %s\n", p.Profile.PostalCode)
	fmt.Fprintf(&b, "Region matched: %t (%s)\n", p.Assumptions.RegionMatched, p.Assumptions.Region)
	fmt.Fprintf(&b, "Cost band: %s\n", p.Assumptions.CostBand)
	fmt.Fprintf(&b, "Weekly infant childcare rate: %s\n", formatDollars(p.Assumptions.WeeklyInfantCost))
	fmt.Fprintf(&b, "Monthly daycare: %s, monthly nanny: %s\n",
		formatDollars(p.Assumptions.ChildcareCosts.Daycare), formatDollars(p.Assumptions.ChildcareCosts.Nanny))
	fmt.Fprintf(&b, "One-time baby gear total: %s\n", formatDollars(p.Assumptions.OneTimeTotal()))
	fmt.Fprintf(&b, "Childcare begins at baby age %d months\n", p.Assumptions.ChildcareStartMonth)
	return b.String()
}

// templateSummary is the deterministic fallback narrative
func templateSummary(p *domain.Projection) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Over the first five years, raising your child is projected to cost %s in total, including housing. ",
		formatDollars(p.TotalCost))
	fmt.Fprintf(&b, "Your savings start at %s, reach their lowest point at %s, and are projected to end the five years at %s.",
		formatDollars(p.Profile.CurrentSavings),
		formatDollars(lowestSavings(p.Monthly)),
		formatDollars(p.Yearly[len(p.Yearly)-1].EndingSavings))

	if line := childcareLine(p); line != "" {
		b.WriteString(" ")
		b.WriteString(line)
	}

	switch len(p.Warnings) {
	case 0:
		b.WriteString(" No warnings were raised for this plan.")
	case 1:
		fmt.Fprintf(&b, " One thing to watch: %s.", strings.ToLower(p.Warnings[0].Title))
	default:
		fmt.Fprintf(&b, " The plan raised %d warnings, starting with: %s.", len(p.Warnings), strings.ToLower(p.Warnings[0].Title))
	}
	return b.String()
}

func templateAssumptions(p *domain.Projection) string {
	var b strings.Builder
	if p.Assumptions.RegionMatched {
		fmt.Fprintf(&b, "Costs were estimated for %s, a %s cost area based on local childcare rates. ",
			p.Assumptions.Region, p.Assumptions.CostBand)
	} else {
		fmt.Fprintf(&b, "Your postal code %s is not in our rate table, so national average rates were applied. ",
			p.Profile.PostalCode)
	}
	fmt.Fprintf(&b, "Baby gear is priced at the %s tier, with %s of one-time purchases spread over the first three months. ",
		p.Assumptions.CostBand.Tier(), formatDollars(p.Assumptions.OneTimeTotal()))
	fmt.Fprintf(&b, "Daycare in your area runs about %s per month and a nanny about %s, with paid care starting when your baby turns %d months old.",
		formatDollars(p.Assumptions.ChildcareCosts.Daycare),
		formatDollars(p.Assumptions.ChildcareCosts.Nanny),
		p.Assumptions.ChildcareStartMonth)
	return b.String()
}

func childcareLine(p *domain.Projection) string {
	switch p.Profile.ChildcareType {
	case domain.ChildcareTypeDaycare:
		return fmt.Sprintf("Daycare adds %s per month from month %d.",
			formatDollars(p.Assumptions.ChildcareCosts.Daycare), p.Assumptions.ChildcareStartMonth+1)
	case domain.ChildcareTypeNanny:
		return fmt.Sprintf("A nanny adds %s per month from month %d.",
			formatDollars(p.Assumptions.ChildcareCosts.Nanny), p.Assumptions.ChildcareStartMonth+1)
	default:
		return "With a parent staying home there are no paid childcare costs."
	}
}

func lowestSavings(monthly []domain.MonthlyProjection) decimal.Decimal {
	if len(monthly) == 0 {
		return decimal.Zero
	}
	minimum := monthly[0].CumulativeSavings
	for _, m := range monthly[1:] {
		if m.CumulativeSavings.LessThan(minimum) {
			minimum = m.CumulativeSavings
		}
	}
	return minimum
}

// formatDollars renders an amount as whole dollars with thousands separators
func formatDollars(d decimal.Decimal) string {
	s := d.Round(0).String()
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	if len(s) > 3 {
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteString(",")
			}
			b.WriteString(s[i : i+3])
		}
		s = b.String()
	}

	if negative {
		return "-$" + s
	}
	return "$" + s
}
