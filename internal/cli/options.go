// internal/cli/options.go
package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"seqcomplex/internal/alphabet"
	"seqcomplex/internal/seqio"
	"seqcomplex/internal/version"
)

// Options holds all CLI flags and arguments.
type Options struct {
	Inputs []string // FASTA/FASTQ paths, "-" = stdin

	// Complexity parameters
	K         int
	Window    int
	Threshold float64

	// Mode / mask policy
	Mask      bool
	LowerCase bool
	MaskChar  string
	Alphabet  string
	Format    string

	// Performance
	Threads int

	// Output
	Output    string
	Sort      bool
	Header    bool // true unless --no-header
	LineWidth int

	// Diagnostics
	Quiet   bool
	Verbose bool
	Version bool
}

// MaskByte returns the validated sentinel byte.
func (o Options) MaskByte() byte { return o.MaskChar[0] }

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: measure or mask low-complexity sequence regions by distinct k-mer counting

Version: %s

Usage:
  %s [options] [input.fa[.gz] | input.fq[.gz] | -] ...

Reads FASTA/FASTQ (gzip ok, '-' = stdin). Without --mask, prints one
TSV row per record: id, length, distinct k-mers, ratio. With --mask,
re-emits records with low-complexity spans replaced.

Options:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, noHeader bool

	fs.IntVarP(&opt.K, "kmer-size", "k", 4, "k-mer length (1..12) [4]")
	fs.IntVarP(&opt.Window, "window-size", "w", 32, "window size in k-mer positions [32]")
	fs.Float64VarP(&opt.Threshold, "threshold", "t", 0.55, "distinct-kmer ratio below which a window is low-complexity (0..1) [0.55]")

	fs.BoolVar(&opt.Mask, "mask", false, "mask low-complexity regions instead of measuring [false]")
	fs.BoolVar(&opt.LowerCase, "lower-case", false, "soft mask (lower-case) instead of the sentinel [false]")
	fs.StringVar(&opt.MaskChar, "mask-char", "N", "sentinel byte for hard masking [N]")
	fs.StringVar(&opt.Alphabet, "alphabet", "iupac", "sequence alphabet: dna | iupac [iupac]")
	fs.StringVar(&opt.Format, "format", seqio.FormatAuto, "input format: auto | fasta | fastq [auto]")

	fs.IntVar(&opt.Threads, "threads", 0, "number of worker threads (0 = all CPUs) [0]")

	fs.StringVarP(&opt.Output, "output", "o", "-", "output path ('-' = stdout, .gz compresses) [-]")
	fs.BoolVar(&opt.Sort, "sort", false, "buffer and restore input record order [false]")
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line in TSV output [false]")
	fs.IntVar(&opt.LineWidth, "line-width", 60, "FASTA output line width (0 = no wrap) [60]")

	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress the summary log [false]")
	fs.BoolVar(&opt.Verbose, "verbose", false, "debug-level logging [false]")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit [false]")
	fs.BoolVarP(&help, "help", "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, pflag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.Header = !noHeader
	opt.Inputs = fs.Args()
	if len(opt.Inputs) == 0 {
		opt.Inputs = []string{"-"}
	}

	// Validation: all of it happens here, before any record is read.
	alpha, err := alphabet.ByName(opt.Alphabet)
	if err != nil {
		return opt, err
	}
	maxK := alphabet.NewRankTransform(alpha).MaxK()
	switch {
	case opt.K < 1 || opt.K > maxK:
		return opt, errors.Errorf("--kmer-size %d out of range (1..%d for --alphabet %s)", opt.K, maxK, opt.Alphabet)
	case opt.Window < 1:
		return opt, errors.New("--window-size must be >= 1")
	case opt.Threshold < 0 || opt.Threshold > 1:
		return opt, errors.Errorf("--threshold %v outside [0,1]", opt.Threshold)
	case len(opt.MaskChar) != 1:
		return opt, errors.Errorf("--mask-char must be a single byte, got %q", opt.MaskChar)
	case opt.LowerCase && fs.Changed("mask-char"):
		return opt, errors.New("--mask-char conflicts with --lower-case")
	case opt.LowerCase && !opt.Mask:
		return opt, errors.New("--lower-case requires --mask")
	case opt.Threads < 0:
		return opt, errors.New("--threads must be >= 0")
	case opt.LineWidth < 0:
		return opt, errors.New("--line-width must be >= 0")
	case !seqio.ValidFormat(opt.Format):
		return opt, errors.Errorf("invalid --format %q (auto | fasta | fastq)", opt.Format)
	}
	return opt, nil
}
