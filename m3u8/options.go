package m3u8

import "github.com/sirupsen/logrus"

// Option configures a parse.
type Option func(*options)

type options struct {
	log logrus.FieldLogger
}

// WithLogger sets the logger used for diagnostics such as ignored
// attributes. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(o *options) {
		o.log = log
	}
}

func newOptions(opts []Option) options {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.log == nil {
		o.log = logrus.StandardLogger()
	}
	return o
}

// ignoreAttribute logs an unmodeled attribute and skips its value.
func ignoreAttribute(c *cursor, log logrus.FieldLogger, tag string, key Token) error {
	log.WithFields(logrus.Fields{
		"tag":       tag,
		"attribute": key.Text,
		"line":      key.Line,
	}).Warn("ignoring unknown attribute")

	if _, ok, err := c.expect(TokenEquals); err != nil || !ok {
		return err
	}
	v, err := c.peek(0)
	if err != nil {
		return err
	}
	if v.Line == key.Line && !v.Kind.IsTag() && !v.Kind.IsKey() && v.Kind != TokenComma && v.Kind != TokenEOF {
		_, err = c.next()
	}
	return err
}
