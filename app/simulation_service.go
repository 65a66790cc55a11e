package app

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"smithwagnercv/adapters/export"
	"smithwagnercv/domain/core"
	"smithwagnercv/domain/learning"
	"smithwagnercv/internal"
	"smithwagnercv/internal/errors"
	"smithwagnercv/internal/simulation"
)

// WorkbookFileName is the name of the optional combined spreadsheet
const WorkbookFileName = "criticalValues.xlsx"

// SimulationService runs critical-value sweeps and writes their tables
type SimulationService struct {
	engine *simulation.Engine
	logger *internal.Logger
}

// GridRequest defines the inputs of a sweep
type GridRequest struct {
	ClassSizes []int
	Mus        []float64
	Options    simulation.Options
	OutputDir  string // empty skips CSV export
	Workbook   bool   // also write criticalValues.xlsx into OutputDir
}

// GridRunResult contains the complete output of a sweep
type GridRunResult struct {
	RunID     core.RunID             `json:"run_id"`
	Grid      *simulation.GridResult `json:"grid"`
	Files     []string               `json:"files"`
	RuntimeMs int64                  `json:"runtime_ms"`
}

// NewSimulationService creates a simulation service
func NewSimulationService(engine *simulation.Engine, logger *internal.Logger) *SimulationService {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &SimulationService{engine: engine, logger: logger}
}

// RunCell simulates a single (class size, mu) combination
func (s *SimulationService) RunCell(ctx context.Context, classSize int, mu float64, opts simulation.Options) (learning.CellReports, error) {
	reports, err := s.engine.RunSimulation(ctx, classSize, mu, opts)
	if err != nil {
		return nil, errors.SimulationError("simulation failed", err)
	}
	return reports, nil
}

// RunGrid sweeps the grid and exports the four result tables
func (s *SimulationService) RunGrid(ctx context.Context, req GridRequest) (*GridRunResult, error) {
	startTime := time.Now()

	grid, err := s.engine.RunGrid(ctx, req.ClassSizes, req.Mus, req.Options)
	if err != nil {
		return nil, errors.SimulationError("grid sweep failed", err)
	}

	result := &GridRunResult{RunID: grid.RunID, Grid: grid}
	if req.OutputDir != "" {
		files, err := export.ExportGrid(req.OutputDir, grid.Reports)
		if err != nil {
			return nil, errors.ExportError(req.OutputDir, err)
		}
		result.Files = append(result.Files, files...)

		if req.Workbook {
			path := filepath.Join(req.OutputDir, WorkbookFileName)
			if err := export.ExportWorkbook(path, grid.Reports); err != nil {
				return nil, errors.ExportError(path, err)
			}
			result.Files = append(result.Files, path)
		}

		for _, f := range result.Files {
			s.logger.Info("[SimulationService] run %s wrote %s", grid.RunID, f)
		}
	}

	result.RuntimeMs = time.Since(startTime).Milliseconds()
	return result, nil
}

// LoggingProgress reports sweep progress through the logger
type LoggingProgress struct {
	logger *internal.Logger
	every  int
}

// NewLoggingProgress logs every n-th cell and the last one
func NewLoggingProgress(logger *internal.Logger, every int) *LoggingProgress {
	if every <= 0 {
		every = 1
	}
	return &LoggingProgress{logger: logger, every: every}
}

// CellCompleted implements ports.ProgressReporter
func (p *LoggingProgress) CellCompleted(done, total, classSize int, mu float64) {
	if done%p.every != 0 && done != total {
		return
	}
	pct := 100 * float64(done) / float64(total)
	p.logger.Info("[Progress] %d/%d cells (%.0f%%), last classSize=%d mu=%v", done, total, pct, classSize, mu)
}

// EnsureOutputDir checks that dir can be created before a long sweep starts
func EnsureOutputDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.ExportError(dir, err)
	}
	return nil
}
