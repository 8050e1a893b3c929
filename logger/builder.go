package logger

import (
	"github.com/kbukum/logkit/appender"
	"github.com/kbukum/logkit/core"
	"github.com/kbukum/logkit/errors"
	"github.com/kbukum/logkit/format"
)

// Registrar accepts finished loggers. manager.LogManager implements it.
type Registrar interface {
	AddLogger(l *Logger) error
}

// Builder assembles a Logger step by step.
//
//	l, err := logger.NewBuilder().
//	    Name("orders").
//	    Level(core.LevelDebug).
//	    Formatter(format.NewJSONFormatter()).
//	    AddAppender(appender.NewConsoleAppender(nil)).
//	    Build()
type Builder struct {
	name      string
	level     core.LoggingLevel
	formatter format.Formatter
	appenders []appender.Appender
	registrar Registrar
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Name sets the logger name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Level sets the minimum level.
func (b *Builder) Level(level core.LoggingLevel) *Builder {
	b.level = level
	return b
}

// Formatter sets a default formatter applied at Build time to every
// appender that never had one set explicitly.
func (b *Builder) Formatter(f format.Formatter) *Builder {
	b.formatter = f
	return b
}

// AddAppender appends an appender to the logger under construction.
func (b *Builder) AddAppender(a appender.Appender) *Builder {
	if a != nil {
		b.appenders = append(b.appenders, a)
	}
	return b
}

// RegisterWith makes Build register the finished logger with r.
func (b *Builder) RegisterWith(r Registrar) *Builder {
	b.registrar = r
	return b
}

// defaultable is implemented by appenders whose formatter can be
// defaulted by the builder.
type defaultable interface {
	UsingDefaultFormatter() bool
	SetFormatter(f format.Formatter)
}

// Build validates the configuration and returns the Logger. When a
// registrar was provided, the logger is registered before being
// returned; a registration failure fails the build.
func (b *Builder) Build() (*Logger, error) {
	if b.name == "" {
		return nil, errors.InvalidInput("logger name must be set")
	}
	if len(b.appenders) == 0 {
		return nil, errors.InvalidInput("at least one appender must be added to the logger")
	}
	if b.formatter != nil {
		for _, a := range b.appenders {
			if d, ok := a.(defaultable); ok && d.UsingDefaultFormatter() {
				d.SetFormatter(b.formatter)
			}
		}
	}
	l, err := New(b.name, b.level, b.appenders)
	if err != nil {
		return nil, err
	}
	if b.registrar != nil {
		if err := b.registrar.AddLogger(l); err != nil {
			return nil, err
		}
	}
	return l, nil
}
