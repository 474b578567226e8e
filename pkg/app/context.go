package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-afp/pkg/services"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool

	// Output streams
	Stdout io.Writer
	Stderr io.Writer

	Logger   logrus.FieldLogger
	Services *services.ServiceFactory
}

// NewContext creates a new application context
func NewContext() *Context {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &Context{
		Context:      context.Background(),
		OutputFormat: "table",
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Logger:       logger,
		Services:     services.NewServiceFactory(services.Config{Logger: logger}),
	}
}

// Log outputs a message based on verbosity settings
func (c *Context) Log(message string) {
	if !c.Quiet && c.Verbose {
		fmt.Fprintln(c.Stderr, message)
	}
}

// Warn reports a non-fatal problem unless quiet
func (c *Context) Warn(message string) {
	if !c.Quiet {
		fmt.Fprintln(c.Stderr, "Warning:", message)
	}
}
