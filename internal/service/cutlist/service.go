package cutlist

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"kitchen-calc/internal/engine"
	"kitchen-calc/internal/storage"
)

type Storage interface {
	GetSettings(ctx context.Context) (*storage.SettingsDocument, error)
	UpdateSettings(ctx context.Context, update storage.SettingsUpdate) (*storage.SettingsDocument, error)
	SaveUnit(ctx context.Context, unit storage.UnitDocument) (*storage.UnitDocument, error)
	GetUnit(ctx context.Context, unitID string) (*storage.UnitDocument, error)
	UpdateUnit(ctx context.Context, unit storage.UnitDocument) (*storage.UnitDocument, error)
	SaveSummary(ctx context.Context, doc storage.SummaryDocument) (*storage.SummaryDocument, error)
	GetSummaryByUnit(ctx context.Context, unitID string) (*storage.SummaryDocument, error)
}

// Service runs the calculators against the current settings snapshot and
// persists the results.
type Service struct {
	storage Storage
}

func New(storage Storage) *Service {
	return &Service{storage: storage}
}

// EdgeBreakdownResult pairs the per-part edge listing with its pricing.
type EdgeBreakdownResult struct {
	UnitID     string                `json:"unit_id"`
	EdgeType   engine.EdgeType       `json:"edge_type"`
	Parts      []engine.EdgeBandPart `json:"parts"`
	TotalEdgeM float64               `json:"total_edge_m"`
	Cost       engine.EdgeCost       `json:"cost"`
}

func (s *Service) Settings(ctx context.Context) (*storage.SettingsDocument, error) {
	return s.storage.GetSettings(ctx)
}

func (s *Service) UpdateSettings(ctx context.Context, update storage.SettingsUpdate) (*storage.SettingsDocument, error) {
	return s.storage.UpdateSettings(ctx, update)
}

// CalculateUnit runs the parametric calculator and persists the result.
func (s *Service) CalculateUnit(ctx context.Context, spec engine.UnitSpec) (*storage.UnitDocument, error) {
	const op = "service.cutlist.CalculateUnit"

	doc, err := s.buildUnitDocument(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := s.storage.SaveUnit(ctx, *doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

// EstimateUnit runs the same calculation with the price estimate in focus.
// The result is persisted like any other calculation so follow-up calls
// (internal counter, edge breakdown, summary) can reference it by id.
func (s *Service) EstimateUnit(ctx context.Context, spec engine.UnitSpec) (*storage.UnitDocument, error) {
	const op = "service.cutlist.EstimateUnit"

	doc, err := s.buildUnitDocument(ctx, spec)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	saved, err := s.storage.SaveUnit(ctx, *doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *Service) Unit(ctx context.Context, unitID string) (*storage.UnitDocument, error) {
	return s.storage.GetUnit(ctx, unitID)
}

// AddInternalCounter calculates the interior fit-out for a saved unit and
// stores it on the unit document. Calling it again replaces the previous
// fit-out.
func (s *Service) AddInternalCounter(ctx context.Context, unitID string, opts engine.InternalCounterOptions) (*storage.UnitDocument, error) {
	const op = "service.cutlist.AddInternalCounter"

	unit, settings, err := s.fetchUnitAndSettings(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	internalParts, err := engine.CalculateInternalCounterParts(unitSpecOf(unit), opts, settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	unit.InternalParts = internalParts
	unit.InternalAreaM2 = engine.InternalTotalAreaM2(internalParts)
	unit.InternalEdgeBandM = engine.InternalTotalEdgeBandM(internalParts)

	updated, err := s.storage.UpdateUnit(ctx, *unit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

// EdgeBreakdown lists every edge of a saved unit's parts with lengths and
// pricing for the requested band type.
func (s *Service) EdgeBreakdown(ctx context.Context, unitID string, edgeType engine.EdgeType) (*EdgeBreakdownResult, error) {
	const op = "service.cutlist.EdgeBreakdown"

	unit, settings, err := s.fetchUnitAndSettings(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	breakdown := engine.CalculateEdgeBreakdown(unit.Parts, settings, edgeType)

	result := &EdgeBreakdownResult{
		UnitID:     unit.ID,
		EdgeType:   edgeType,
		Parts:      breakdown,
		TotalEdgeM: engine.CalculateTotalEdgeMeters(breakdown),
		Cost:       engine.CalculateEdgeCost(breakdown, settings),
	}
	if result.EdgeType == "" {
		result.EdgeType = engine.EdgePVC
	}

	return result, nil
}

// GenerateSummary builds the merged report from a saved unit, including a
// stored interior fit-out if one exists, and persists it keyed by the unit.
func (s *Service) GenerateSummary(ctx context.Context, unitID string) (*storage.SummaryDocument, error) {
	const op = "service.cutlist.GenerateSummary"

	unit, settings, err := s.fetchUnitAndSettings(ctx, unitID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	summary := engine.SummaryFromParts(unit.Parts, unit.InternalParts, settings)
	summary.UnitID = unit.ID

	saved, err := s.storage.SaveSummary(ctx, storage.SummaryDocument{
		UnitID:  unit.ID,
		Summary: *summary,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return saved, nil
}

func (s *Service) SummaryByUnit(ctx context.Context, unitID string) (*storage.SummaryDocument, error) {
	return s.storage.GetSummaryByUnit(ctx, unitID)
}

// buildUnitDocument is the shared calculation path of CalculateUnit and
// EstimateUnit: parts, totals, sheet usage and the price estimate, all from
// one settings snapshot.
func (s *Service) buildUnitDocument(ctx context.Context, spec engine.UnitSpec) (*storage.UnitDocument, error) {
	settingsDoc, err := s.storage.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	settings := settingsDoc.Settings

	parts, err := engine.CalculateUnitParts(spec, settings)
	if err != nil {
		return nil, err
	}

	// The resolved depth is stored so re-reads of the unit never depend on
	// settings that may have changed since.
	depth, err := engine.ResolveDepth(spec, settings)
	if err != nil {
		return nil, err
	}

	totalAreaM2 := engine.TotalAreaM2(parts)
	totalEdgeBandM := engine.TotalEdgeBandM(parts)
	usage := engine.CalculateMaterialUsage(totalAreaM2, totalEdgeBandM, settings)

	return &storage.UnitDocument{
		Type:          string(spec.Type),
		WidthMM:       spec.WidthMM,
		HeightMM:      spec.HeightMM,
		DepthMM:       depth,
		ShelfCount:    spec.ShelfCount,
		Parts:         parts,
		TotalAreaM2:   totalAreaM2,
		EdgeBandM:     totalEdgeBandM,
		MaterialUsage: usage,
		PriceEstimate: engine.CalculateCost(usage, settings),
	}, nil
}

// fetchUnitAndSettings loads the unit document and the settings snapshot in
// parallel.
func (s *Service) fetchUnitAndSettings(ctx context.Context, unitID string) (*storage.UnitDocument, engine.Settings, error) {
	var (
		unit        *storage.UnitDocument
		settingsDoc *storage.SettingsDocument
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		unit, err = s.storage.GetUnit(gCtx, unitID)
		if err != nil {
			return fmt.Errorf("unit: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		settingsDoc, err = s.storage.GetSettings(gCtx)
		if err != nil {
			return fmt.Errorf("settings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, engine.Settings{}, err
	}

	return unit, settingsDoc.Settings, nil
}

func unitSpecOf(unit *storage.UnitDocument) engine.UnitSpec {
	return engine.UnitSpec{
		Type:       engine.UnitType(unit.Type),
		WidthMM:    unit.WidthMM,
		HeightMM:   unit.HeightMM,
		DepthMM:    unit.DepthMM,
		ShelfCount: unit.ShelfCount,
	}
}
