// Package extract runs a full extraction pass over a parsed record
// tree, wiring the relation resolver, event normalizer, note
// reconstructor, place resolver, and marriage fusion together into the
// serializable aggregate model.
package extract

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/arbores/lineage/config"
	"github.com/arbores/lineage/errors"
	"github.com/arbores/lineage/event"
	"github.com/arbores/lineage/logger"
	"github.com/arbores/lineage/note"
	"github.com/arbores/lineage/place"
	"github.com/arbores/lineage/record"
	"github.com/arbores/lineage/relation"
)

// Extractor runs extraction passes. An Extractor is read-only after
// construction and safe for concurrent use.
type Extractor struct {
	cfg config.ExtractConfig
	log *zap.SugaredLogger
}

// New builds an extractor. A nil logger uses the global logger.
func New(cfg config.ExtractConfig, log *zap.SugaredLogger) *Extractor {
	if log == nil {
		log = logger.Logger
	}
	return &Extractor{
		cfg: cfg,
		log: log.Named("extract"),
	}
}

// Extract produces the aggregate model for one document. Faults inside
// a record degrade to partial data for that record and surface as
// warnings; the only error condition is a missing document.
func (x *Extractor) Extract(doc *record.Document) (*Model, error) {
	if doc == nil {
		return nil, errors.New("no document to extract")
	}
	start := time.Now()

	format := x.cfg.PlaceFormat
	if declared, ok := doc.PlaceFormat(); ok {
		format = declared
	}
	places := place.NewResolver(format, nil)
	normalizer := event.NewNormalizer(places)

	model := &Model{
		Metadata: Metadata{
			PassID:      uuid.NewString(),
			GeneratedAt: start.UTC(),
			PlaceFormat: format,
		},
	}

	families, divorces, famWarnings := x.extractFamilies(doc, normalizer)
	model.Families = families
	model.Warnings = append(model.Warnings, famWarnings...)

	individuals, indWarnings := x.extractIndividuals(doc, normalizer, divorces)
	model.Individuals = individuals
	model.Warnings = append(model.Warnings, indWarnings...)

	model.Notes = extractNoteRecords(doc)
	if x.cfg.KeepSources {
		model.Sources = extractSourceRecords(doc)
		model.Repositories = extractRepositoryRecords(doc)
	}
	if x.cfg.KeepMedia {
		model.Media = extractMediaRecords(doc)
	}

	model.Metadata.Individuals = len(model.Individuals)
	model.Metadata.Families = len(model.Families)

	x.log.Infow("Extraction pass complete",
		logger.FieldPassID, model.Metadata.PassID,
		logger.FieldIndividuals, len(model.Individuals),
		logger.FieldFamilies, len(model.Families),
		logger.FieldWarnings, len(model.Warnings),
		logger.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return model, nil
}

// divorceIndex records which spouse pairs have a divorce on record.
// Built once per pass, read-only afterwards.
type divorceIndex map[[2]string]bool

func (d divorceIndex) divorced(a, b string) bool {
	return d[[2]string{a, b}] || d[[2]string{b, a}]
}

func (x *Extractor) extractFamilies(doc *record.Document, normalizer *event.Normalizer) ([]Family, divorceIndex, []event.Warning) {
	raw := doc.Families()
	families := make([]Family, 0, len(raw))
	divorces := make(divorceIndex)
	var warnings []event.Warning

	for _, fam := range raw {
		events, w := normalizer.FamilyEvents(fam)
		warnings = append(warnings, w...)

		f := Family{
			ID:          fam.ID(),
			ChildrenIDs: fam.ChildIDs(),
			Events:      events,
		}
		husb, hasHusb := fam.HusbandID()
		if hasHusb {
			f.HusbandID = &husb
		}
		wife, hasWife := fam.WifeID()
		if hasWife {
			f.WifeID = &wife
		}
		families = append(families, f)

		if hasHusb && hasWife {
			for _, ev := range events {
				if event.IsDivorceKind(ev.Kind) {
					divorces[[2]string{husb, wife}] = true
					break
				}
			}
		}
	}
	return families, divorces, warnings
}

// extractIndividuals processes individuals with a bounded worker pool.
// Records are independent, so per-record parallelization is safe; the
// output keeps document order regardless of worker count.
func (x *Extractor) extractIndividuals(doc *record.Document, normalizer *event.Normalizer, divorces divorceIndex) ([]Individual, []event.Warning) {
	raw := doc.Individuals()
	results := make([]Individual, len(raw))
	perRecord := make([][]event.Warning, len(raw))

	workers := x.cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(raw) {
		workers = len(raw)
	}

	if workers <= 1 {
		for i, ind := range raw {
			results[i], perRecord[i] = x.extractIndividual(ind, normalizer, divorces)
		}
	} else {
		indices := make(chan int)
		var wg sync.WaitGroup
		wg.Add(workers)
		for w := 0; w < workers; w++ {
			go func() {
				defer wg.Done()
				for i := range indices {
					results[i], perRecord[i] = x.extractIndividual(raw[i], normalizer, divorces)
				}
			}()
		}
		for i := range raw {
			indices <- i
		}
		close(indices)
		wg.Wait()
	}

	var warnings []event.Warning
	for _, w := range perRecord {
		warnings = append(warnings, w...)
	}
	return results, warnings
}

func (x *Extractor) extractIndividual(ind record.Individual, normalizer *event.Normalizer, divorces divorceIndex) (Individual, []event.Warning) {
	self := ind.ID()

	out := Individual{
		ID:        self,
		Relations: relation.Resolve(ind),
	}
	if v, ok := ind.Name(); ok {
		out.Name = &v
	}
	if v, ok := ind.Sex(); ok {
		out.Sex = &v
	}

	events, warnings := normalizer.IndividualEvents(ind)

	// Family events are attributed to each spouse, annotated with the
	// other spouse's id when it resolves.
	for _, fam := range ind.FamiliesAsSpouse() {
		famEvents, w := normalizer.FamilyEvents(fam)
		warnings = append(warnings, w...)
		other := otherSpouseID(fam, self)
		for _, ev := range famEvents {
			if other != "" {
				spouse := other
				ev.SpouseID = &spouse
			}
			events = append(events, ev)
		}
	}

	out.Events = event.FuseMarriages(events, func(spouse string) bool {
		return divorces.divorced(self, spouse)
	})
	out.Notes = extractOwnNotes(ind.Node())
	return out, warnings
}

func otherSpouseID(fam record.Family, self string) string {
	husb, _ := fam.HusbandID()
	wife, _ := fam.WifeID()
	switch self {
	case wife:
		return husb
	case husb:
		return wife
	default:
		return ""
	}
}

// extractOwnNotes collects the record-level notes of an individual:
// references kept as references, inline fragments reconstructed under a
// synthetic id.
func extractOwnNotes(n *record.Node) []event.Note {
	var notes []event.Note
	for _, c := range n.All(record.TagNote) {
		if record.IsPointer(c.Value) {
			notes = append(notes, event.Note{ID: c.Value, Reference: true})
			continue
		}
		text, ok := note.Reconstruct(c)
		if !ok {
			continue
		}
		notes = append(notes, event.Note{ID: "N-" + uuid.NewString(), Text: text})
	}
	return notes
}

func extractNoteRecords(doc *record.Document) []NoteRecord {
	var out []NoteRecord
	for _, n := range doc.Notes() {
		text, ok := note.Reconstruct(n)
		if !ok {
			continue
		}
		out = append(out, NoteRecord{ID: n.XRef, Text: text})
	}
	return out
}

func extractSourceRecords(doc *record.Document) []Source {
	var out []Source
	for _, n := range doc.Sources() {
		s := Source{ID: n.XRef}
		if v, ok := n.ValueOf(record.TagTitle); ok {
			s.Title = &v
		}
		if v, ok := n.ValueOf(record.TagAuthor); ok {
			s.Author = &v
		}
		if v, ok := n.ValueOf(record.TagText); ok {
			s.Text = &v
		}
		out = append(out, s)
	}
	return out
}

func extractRepositoryRecords(doc *record.Document) []Repository {
	var out []Repository
	for _, n := range doc.Repositories() {
		r := Repository{ID: n.XRef}
		if v, ok := n.ValueOf(record.TagName); ok {
			r.Name = &v
		}
		if v, ok := n.ValueOf(record.TagAddress); ok {
			r.Address = &v
		}
		out = append(out, r)
	}
	return out
}

func extractMediaRecords(doc *record.Document) []MediaObject {
	var out []MediaObject
	for _, n := range doc.Media() {
		m := MediaObject{ID: n.XRef}
		if v, ok := n.ValueOf(record.TagFile); ok {
			m.File = &v
		}
		if v, ok := n.ValueOf(record.TagTitle); ok {
			m.Title = &v
		}
		out = append(out, m)
	}
	return out
}
