package scaffold

import (
	"context"
	"fmt"

	"github.com/teranos/scaffold/catalog"
	"github.com/teranos/scaffold/errors"
	"github.com/teranos/scaffold/logger"
)

// RunOptions configures one generation run
type RunOptions struct {
	// BaseDir is the directory holding one subdirectory per component
	BaseDir string
	// CatalogName labels the catalog in progress output
	CatalogName string

	Writer  *Writer
	Emitter ProgressEmitter
}

// Generate renders and writes every component of cat in order. The first
// failure stops the run; the report covers everything handled before it.
func (g *Generator) Generate(ctx context.Context, cat *catalog.Catalog, opts RunOptions) (*Report, error) {
	if cat == nil {
		cat = &catalog.Catalog{}
	}
	emitter := opts.Emitter
	if emitter == nil {
		emitter = NopEmitter{}
	}
	writer := opts.Writer
	if writer == nil {
		writer = NewWriter(PolicyOverwrite, false, false)
	}

	tier := g.opts.WithTier(cat.Tier).Tier
	report := &Report{
		Catalog:           opts.CatalogName,
		BaseDir:           opts.BaseDir,
		DryRun:            writer.DryRun,
		FilesPerComponent: g.FilesPerComponent(),
	}

	logger.Infow("Generation started",
		logger.FieldCatalog, opts.CatalogName,
		logger.FieldPath, opts.BaseDir,
		logger.FieldPolicy, writer.Policy,
		logger.FieldCount, cat.Len())
	emitter.EmitStart(opts.CatalogName, tier, cat.Len())

	for _, spec := range cat.Components {
		if err := ctx.Err(); err != nil {
			err = errors.Wrap(err, "generation cancelled")
			emitter.EmitError(spec.Name, err)
			return report, err
		}

		emitter.EmitComponent(spec.Name)

		files, err := g.RenderComponent(spec, cat.Tier, opts.BaseDir)
		if err != nil {
			emitter.EmitError(spec.Name, err)
			return report, err
		}

		results, err := writer.WriteComponent(ctx, files)
		for _, res := range results {
			report.Files = append(report.Files, res)
			emitter.EmitFile(res)
			if res.Modified {
				emitter.EmitWarning(modifiedWarning(res))
			}
		}
		if err != nil {
			logger.Errorw("Generation failed",
				logger.FieldComponent, spec.Name,
				logger.FieldError, err,
				logger.FieldErrorType, errors.ClassOf(err))
			emitter.EmitError(spec.Name, err)
			return report, err
		}
		report.Components++
	}

	logger.Infow("Generation finished", "summary", report.Summary())
	emitter.EmitComplete(report)
	return report, nil
}

func modifiedWarning(res FileResult) string {
	switch res.Status {
	case StatusOverwritten:
		return fmt.Sprintf("%s had local changes and was overwritten", res.Path)
	case StatusSkipped:
		return fmt.Sprintf("%s has local changes and was kept", res.Path)
	default:
		return fmt.Sprintf("%s differs from the rendered content", res.Path)
	}
}
