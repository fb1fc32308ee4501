package cli

import (
	"fmt"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/spf13/pflag"
)

// dateValue is an optional YYYY-MM-DD flag. It stays nil until set.
type dateValue struct {
	t **time.Time
}

var _ pflag.Value = dateValue{}

func newDateValue(p **time.Time) dateValue {
	return dateValue{t: p}
}

func (d dateValue) String() string {
	if d.t == nil || *d.t == nil {
		return ""
	}
	return (*d.t).Format(domain.DateLayout)
}

func (d dateValue) Set(s string) error {
	parsed, err := domain.ParseDate(s)
	if err != nil {
		return fmt.Errorf("use YYYY-MM-DD")
	}
	*d.t = &parsed
	return nil
}

func (dateValue) Type() string { return "date" }

// optionalDateFlag registers an unset-by-default date flag on fs.
func optionalDateFlag(fs *pflag.FlagSet, p **time.Time, name, usage string) {
	fs.Var(newDateValue(p), name, usage)
}
