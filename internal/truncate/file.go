package truncate

import (
	"github.com/aleister1102/difftrim/internal/filemanager"
)

// TruncateFile reads the diff at inputPath, truncates it, and writes the
// result to outputPath. The output is written atomically so a failure never
// leaves a partially truncated file behind. Errors carry the taxonomy of the
// errorwrapper package: NotFoundError for a missing input, IOError for an
// unwritable output.
func (t *Truncator) TruncateFile(inputPath, outputPath string) (Stats, error) {
	fm := filemanager.NewFileManager(t.logger)

	data, err := fm.ReadFile(inputPath, filemanager.DefaultFileReadOptions())
	if err != nil {
		return Stats{}, err
	}

	output, stats := t.Truncate(string(data))

	opts := filemanager.DefaultFileWriteOptions()
	opts.Atomic = true
	if err := fm.WriteFile(outputPath, []byte(output), opts); err != nil {
		return Stats{}, err
	}

	t.logger.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("sections_total", stats.SectionsTotal).
		Int("sections_truncated", stats.SectionsTruncated).
		Int("lines_removed", stats.LinesRemoved).
		Msg("Diff truncation completed")

	return stats, nil
}
