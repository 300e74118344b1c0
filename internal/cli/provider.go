package cli

import apperrors "github.com/agbru/natcalc/internal/errors"

var _ apperrors.ColorProvider = CLIColorProvider{}

// CLIColorProvider satisfies apperrors.ColorProvider with codes from the
// active terminal theme. The errors package takes an interface here to avoid
// importing cli.
type CLIColorProvider struct{}

func (c CLIColorProvider) Yellow() string { return ColorYellow() }

func (c CLIColorProvider) Reset() string { return ColorReset() }
