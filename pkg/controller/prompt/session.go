package prompt

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/oskpack/pkg/domain/interfaces"
	"github.com/m-mizutani/oskpack/pkg/domain/model"
	"github.com/m-mizutani/oskpack/pkg/utils/logging"
)

var (
	// ErrQuit is returned when the user enters the quit sentinel or input ends
	ErrQuit = goerr.New("quit requested")

	// ErrInterrupted is returned when the session is cancelled by a signal
	ErrInterrupted = goerr.New("interrupted")

	// ErrNoFolders is returned when the base directory has no subdirectories
	ErrNoFolders = goerr.New("no folders found")

	// ErrPackFailed is returned after all folders were attempted and at least one failed
	ErrPackFailed = goerr.New("some skin folders could not be packed")
)

// IsCleanExit reports whether err ends the program without being a failure
func IsCleanExit(err error) bool {
	return errors.Is(err, ErrQuit) || errors.Is(err, ErrInterrupted)
}

// config holds internal session configuration
type config struct {
	input       io.Reader
	output      io.Writer
	baseDir     string
	workDir     string
	homeDir     string
	palette     Palette
	enableColor bool
}

// Option is a functional option for Session configuration
type Option func(*config)

// WithInput sets where user answers are read from
func WithInput(r io.Reader) Option {
	return func(c *config) {
		c.input = r
	}
}

// WithOutput sets where menus and prompts are written
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		c.output = w
	}
}

// WithBaseDir sets the directory whose subfolders are offered as skins
func WithBaseDir(dir string) Option {
	return func(c *config) {
		c.baseDir = dir
	}
}

// WithWorkDir sets the directory used for the "Current Directory" destination
func WithWorkDir(dir string) Option {
	return func(c *config) {
		c.workDir = dir
	}
}

// WithHomeDir sets the home directory used for Desktop, Documents and Downloads
func WithHomeDir(dir string) Option {
	return func(c *config) {
		c.homeDir = dir
	}
}

// WithPalette sets the colors of the terminal output
func WithPalette(p Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithColor enables or disables colored output
func WithColor(enabled bool) Option {
	return func(c *config) {
		c.enableColor = enabled
	}
}

// Session drives one interactive run: choose skin folders, choose a
// destination, pack each folder
type Session struct {
	packer  interfaces.SkinPacker
	reader  *lineReader
	pres    *presenter
	baseDir string
	workDir string
	homeDir string
}

// NewSession creates a new interactive session
func NewSession(packer interfaces.SkinPacker, opts ...Option) (*Session, error) {
	cfg := &config{
		input:       os.Stdin,
		output:      os.Stdout,
		palette:     DefaultPalette(),
		enableColor: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to get working directory")
		}
		cfg.workDir = wd
	}
	if cfg.baseDir == "" {
		cfg.baseDir = cfg.workDir
	}
	if cfg.homeDir == "" {
		// Only needed for home-based destinations; reported when one is chosen
		cfg.homeDir, _ = os.UserHomeDir()
	}

	return &Session{
		packer:  packer,
		reader:  newLineReader(cfg.input),
		pres:    newPresenter(cfg.output, cfg.palette, cfg.enableColor),
		baseDir: cfg.baseDir,
		workDir: cfg.workDir,
		homeDir: cfg.homeDir,
	}, nil
}

// Run executes the session. Quitting and interruption are returned as
// ErrQuit and ErrInterrupted after "Exiting program." has been printed.
func (s *Session) Run(ctx context.Context) error {
	err := s.run(ctx)

	switch {
	case errors.Is(err, ErrInterrupted):
		s.pres.plain("\nExiting program.")
	case errors.Is(err, ErrQuit):
		s.pres.plain("Exiting program.")
	}

	return err
}

func (s *Session) run(ctx context.Context) error {
	logger := logging.From(ctx)

	folders, err := s.packer.ListFolders(s.baseDir)
	if err != nil {
		s.pres.line(s.pres.failure, "Cannot list folders in %s: %v", s.baseDir, err)
		return goerr.Wrap(err, "failed to list skin folders")
	}
	if len(folders) == 0 {
		s.pres.line(s.pres.failure, "No folders found in %s", s.baseDir)
		return goerr.Wrap(ErrNoFolders, "nothing to pack", goerr.V("base", s.baseDir))
	}

	selected, err := s.selectFolders(ctx, folders)
	if err != nil {
		return err
	}

	dest, err := s.selectDestination(ctx)
	if err != nil {
		return err
	}

	sources := make([]string, 0, len(selected))
	for _, f := range selected {
		sources = append(sources, f.Path)
	}

	logger.Debug("Packing selected skin folders",
		"sources", sources,
		"destination", dest.Path,
	)

	report, err := s.packer.PackAll(ctx, sources, dest.Path, s.reportItem)
	if err != nil {
		if ctx.Err() != nil {
			return goerr.Wrap(ErrInterrupted, "interrupted while packing", goerr.V("cause", err.Error()))
		}
		return goerr.Wrap(err, "failed to pack skin folders")
	}

	s.pres.line(s.pres.muted, "Packed %d of %d skin folder(s) into %s", len(report.Results), len(sources), dest.Path)
	if report.Failed() {
		return goerr.Wrap(ErrPackFailed, "packing finished with failures",
			goerr.V("failed", len(report.Failures)),
			goerr.V("total", len(sources)),
			goerr.V("errors", report.Err().Error()),
		)
	}

	return nil
}

func (s *Session) selectFolders(ctx context.Context, folders []*model.SkinFolder) ([]*model.SkinFolder, error) {
	names := make([]string, len(folders))
	for i, f := range folders {
		names[i] = f.Name
	}

	s.pres.line(s.pres.muted, "")
	s.pres.menu("Select one or more skin folders (separate with commas):", names)

	for {
		input, err := s.ask(ctx, s.pres.sourcePrompt, "Enter the numbers of the folders (or 'q' to exit): ")
		if err != nil {
			return nil, err
		}

		indices, err := ParseSelection(input, len(folders))
		if err != nil {
			s.pres.line(s.pres.notice, "Invalid input: %v. Enter numbers between 1 and %d or 'q' to exit.", err, len(folders))
			continue
		}

		selected := make([]*model.SkinFolder, 0, len(indices))
		for _, n := range indices {
			selected = append(selected, folders[n-1])
		}
		return selected, nil
	}
}

func (s *Session) selectDestination(ctx context.Context) (*model.Destination, error) {
	s.pres.menu("Select a destination folder:", DestinationLabels)

	for {
		input, err := s.ask(ctx, s.pres.destPrompt, "Enter the number of the destination folder (or 'q' to exit): ")
		if err != nil {
			return nil, err
		}

		choice, err := ParseChoice(input, len(DestinationLabels))
		if err != nil {
			s.pres.line(s.pres.notice, "Invalid input: %v. Please enter a number or 'q' to exit.", err)
			continue
		}

		dest, err := ResolveDestination(choice, s.homeDir, s.workDir)
		if err != nil {
			s.pres.line(s.pres.notice, "%s is not available: %v. Please choose another destination.", DestinationLabels[choice-1], err)
			continue
		}

		info, err := os.Stat(dest.Path)
		if err != nil || !info.IsDir() {
			s.pres.line(s.pres.notice, "%s does not exist. Please choose another destination.", dest.Path)
			continue
		}

		return dest, nil
	}
}

// ask prints a prompt and reads one answer, turning the quit sentinel into ErrQuit
func (s *Session) ask(ctx context.Context, style *color.Color, text string) (string, error) {
	s.pres.prompt(style, text)

	input, err := s.reader.ReadLine(ctx)
	if err != nil {
		return "", err
	}
	if isQuit(input) {
		return "", goerr.Wrap(ErrQuit, "quit sentinel entered")
	}

	return input, nil
}

func (s *Session) reportItem(result *model.PackResult, failure *model.PackFailure) {
	if failure != nil {
		s.pres.line(s.pres.failure, "Failed to pack %s: %v", filepath.Base(failure.Source), failure.Err)
		return
	}

	if result.Renamed {
		s.pres.line(s.pres.notice, "Another selected skin is also named %q; saved as %s", result.SkinName, filepath.Base(result.ArchivePath))
	}
	s.pres.line(s.pres.result, "Created %s", result.ArchivePath)
}
