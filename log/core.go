package log

import (
	"go.uber.org/zap/zapcore"
)

// hookCore wraps a zapcore.Core and invokes the registered write hooks for
// every entry that passes the level check, before handing the entry to the
// wrapped core.
type hookCore struct {
	zapcore.Core
	getWriteHooks func() map[string]WriteHook
}

func (c *hookCore) With(fields []zapcore.Field) zapcore.Core {
	return &hookCore{
		Core:          c.Core.With(fields),
		getWriteHooks: c.getWriteHooks,
	}
}

func (c *hookCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(entry.Level) {
		return checked.AddCore(entry, c)
	}
	return checked
}

func (c *hookCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	for _, hook := range c.getWriteHooks() {
		hook(entry, fields)
	}
	return c.Core.Write(entry, fields)
}
