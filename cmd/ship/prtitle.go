package main

import (
	"fmt"
	"io"

	"github.com/tss-calculator/ship/pkg/release/application/format"
)

func pullRequestTitle(out io.Writer, version string) error {
	_, err := fmt.Fprintln(out, format.PullRequestTitle(format.TitleParams{Version: version}))
	return err
}
