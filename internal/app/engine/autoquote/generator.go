// Package autoquote turns a course instance's roster into draft quotations,
// one per client organisation represented on it.
//
// Generation is deliberately best-effort: every draft is reviewed by a human
// before it is sent, so a missing course record degrades to zero catalog
// pricing and a delegate without an organisation is skipped rather than
// failing the whole batch. The only hard failure is a missing instance.
package autoquote

import (
	"context"

	coursestore "github.com/atoengine/portal/internal/app/store/courses"
	delegatestore "github.com/atoengine/portal/internal/app/store/delegates"
	instancestore "github.com/atoengine/portal/internal/app/store/instances"
	quotestore "github.com/atoengine/portal/internal/app/store/quotes"

	"github.com/atoengine/portal/internal/app/engine/pricing"
	"github.com/atoengine/portal/internal/app/system/apperr"
	"github.com/atoengine/portal/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Generator orchestrates roster → grouped delegates → priced drafts.
type Generator struct {
	instances *instancestore.Store
	delegates *delegatestore.Store
	courses   *coursestore.Store
	quotes    *quotestore.Store
	log       *zap.Logger
}

// New builds a Generator over the given stores.
func New(instances *instancestore.Store, delegates *delegatestore.Store, courses *coursestore.Store, quotes *quotestore.Store, logger *zap.Logger) *Generator {
	return &Generator{
		instances: instances,
		delegates: delegates,
		courses:   courses,
		quotes:    quotes,
		log:       logger,
	}
}

// orgGroup collects one organisation's delegates with the preferences
// carried forward from their bookings.
type orgGroup struct {
	orgID primitive.ObjectID
	lines []models.QuoteDelegate
}

// GenerateDraftQuotes creates one draft quote per organisation represented
// on the instance's roster and returns how many were created.
//
// An empty roster is a valid empty result, not an error. Every call creates
// fresh drafts; existing quotes for the same organisation+instance pair are
// never updated or merged.
func (g *Generator) GenerateDraftQuotes(ctx context.Context, instanceID primitive.ObjectID) (int, error) {
	instance, err := g.instances.GetByID(ctx, instanceID)
	if err == mongo.ErrNoDocuments {
		return 0, apperr.NotFoundf("course instance %s", instanceID.Hex())
	}
	if err != nil {
		return 0, apperr.Storagef("load instance", err)
	}

	if len(instance.Bookings) == 0 {
		return 0, nil
	}

	// Batch-resolve every booked delegate, then remember which booking each
	// came from so the materials preference carries forward.
	ids := make([]primitive.ObjectID, 0, len(instance.Bookings))
	wantsBook := make(map[primitive.ObjectID]bool, len(instance.Bookings))
	for _, b := range instance.Bookings {
		if b.DelegateID.IsZero() {
			continue
		}
		ids = append(ids, b.DelegateID)
		wantsBook[b.DelegateID] = b.IncludesBook
	}
	resolved, err := g.delegates.GetByIDs(ctx, ids)
	if err != nil {
		return 0, apperr.Storagef("resolve delegates", err)
	}

	groups := groupByOrganisation(resolved, wantsBook)
	if len(groups) == 0 {
		return 0, nil
	}

	coursePricing := g.resolveCoursePricing(ctx, instance)

	created := 0
	for _, grp := range groups {
		prefs := make([]pricing.DelegatePreference, len(grp.lines))
		for i, l := range grp.lines {
			prefs[i] = pricing.DelegatePreference{
				WantsMaterials: l.WantsMaterials,
				WantsTake2:     l.WantsTake2,
			}
		}

		// Logistics are unknown at generation time; the operator fills
		// travel and accommodation in during manual edit.
		financials := pricing.ComputeFinancials(coursePricing, prefs, pricing.Logistics{})

		_, err := g.quotes.Create(ctx, models.Quote{
			OrganisationID:   grp.orgID,
			CourseInstanceID: instance.ID,
			DelegateCount:    len(grp.lines),
			Delegates:        grp.lines,
			Financials:       financials,
		})
		if err != nil {
			return created, apperr.Storagef("create quote", err)
		}
		created++
	}

	g.log.Info("generated draft quotes",
		zap.String("instance_id", instanceID.Hex()),
		zap.Int("quotes_created", created))
	return created, nil
}

// groupByOrganisation buckets resolved delegates by organisation, building
// their quote line items. WantsMaterials carries forward from the booking's
// includesBook flag; WantsTake2 defaults to false because nothing at
// booking time records it. Delegates without an organisation are dropped.
// The iteration order of groups is unspecified; each group's line order
// follows the resolved delegate order, which is deterministic for a given
// roster snapshot.
func groupByOrganisation(delegates []models.Delegate, wantsBook map[primitive.ObjectID]bool) []orgGroup {
	index := make(map[primitive.ObjectID]int)
	var groups []orgGroup
	for _, d := range delegates {
		if d.OrganisationID.IsZero() {
			continue
		}
		i, ok := index[d.OrganisationID]
		if !ok {
			i = len(groups)
			index[d.OrganisationID] = i
			groups = append(groups, orgGroup{orgID: d.OrganisationID})
		}
		groups[i].lines = append(groups[i].lines, models.QuoteDelegate{
			FirstName:      d.FirstName,
			LastName:       d.LastName,
			Email:          d.Email,
			WantsMaterials: wantsBook[d.ID],
			WantsTake2:     false,
		})
	}
	return groups
}

// resolveCoursePricing loads the instance's course. A course that cannot be
// resolved degrades to zero catalog pricing rather than failing the batch;
// the instance's per-delegate override still applies either way.
func (g *Generator) resolveCoursePricing(ctx context.Context, instance models.CourseInstance) pricing.CoursePricing {
	cp := pricing.CoursePricing{PriceOverride: instance.PricePerDelegate}

	course, err := g.courses.GetByID(ctx, instance.CourseID)
	if err != nil {
		g.log.Warn("auto-quote: course unresolved, using zero catalog pricing",
			zap.String("instance_id", instance.ID.Hex()),
			zap.String("course_id", instance.CourseID.Hex()),
			zap.Error(err))
		return cp
	}

	cp.CostPerEnrollment = course.CostPerEnrollment
	cp.MaterialsCost = course.MaterialsCost
	cp.Take2Cost = course.Take2Cost
	cp.ExamCost = course.ExamCost
	cp.RequiresExam = course.RequiresExam
	return cp
}
