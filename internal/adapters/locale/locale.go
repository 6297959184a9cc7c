package locale

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/bnema/vpnadm/internal/domain"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed translation/*.toml
var translations embed.FS

var (
	English = language.English
	Persian = language.Persian
)

var matcher = language.NewMatcher([]language.Tag{English, Persian})

// Translator renders catalog messages and numbers for one language.
type Translator struct {
	tag       language.Tag
	localizer *i18n.Localizer
	printer   *message.Printer
	log       logrus.FieldLogger
}

func New(lang string, log logrus.FieldLogger) (*Translator, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}

	bundle := i18n.NewBundle(English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	if err := parseTranslationFiles(bundle); err != nil {
		return nil, err
	}

	tag := Match(lang)
	return &Translator{
		tag:       tag,
		localizer: i18n.NewLocalizer(bundle, tag.String()),
		printer:   message.NewPrinter(tag),
		log:       log,
	}, nil
}

// Match maps a requested language (a tag, or an Accept-Language style list) to
// a supported one. Anything unknown falls back to English.
func Match(lang string) language.Tag {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return English
	}

	desired, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(desired) == 0 {
		return English
	}

	_, index, confidence := matcher.Match(desired...)
	if confidence == language.No {
		return English
	}
	if index == 1 {
		return Persian
	}
	return English
}

func (t *Translator) Tag() language.Tag {
	return t.tag
}

func (t *Translator) Persian() bool {
	return t.tag == Persian
}

// T localizes key. Params are "name==value" pairs passed as template data.
func (t *Translator) T(key string, params ...string) string {
	msg, err := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: templateData(params),
	})
	if err != nil {
		t.log.WithError(err).WithField("key", key).Debug("missing translation")
		return key
	}
	return msg
}

// SizeLabels returns the unit names FormatBytes should use.
func (t *Translator) SizeLabels() domain.SizeLabels {
	if t.Persian() {
		return domain.PersianSizeLabels
	}
	return domain.EnglishSizeLabels
}

func (t *Translator) Bytes(bytes int64) string {
	return t.digits(domain.FormatBytes(bytes, 2, t.SizeLabels()))
}

// Number formats an integer with the language's grouping and digits.
func (t *Translator) Number(n int64) string {
	return t.digits(t.printer.Sprintf("%d", n))
}

// Price formats an amount in whole toman.
func (t *Translator) Price(amount float64) string {
	return t.digits(t.printer.Sprintf("%.0f", amount))
}

func (t *Translator) Date(at time.Time) string {
	if at.IsZero() {
		return t.T("common.none")
	}
	return t.digits(at.Local().Format("2006-01-02 15:04"))
}

func (t *Translator) Clock(at time.Time) string {
	return t.digits(at.Local().Format("15:04:05"))
}

func (t *Translator) StatusLabel(status domain.Status) string {
	if status == "" {
		status = domain.StatusActive
	}
	return t.T("status." + string(status))
}

func (t *Translator) TagLabel(tag domain.Tag) string {
	return t.T("tag." + string(tag))
}

var persianDigits = strings.NewReplacer(
	"0", "۰", "1", "۱", "2", "۲", "3", "۳", "4", "۴",
	"5", "۵", "6", "۶", "7", "۷", "8", "۸", "9", "۹",
)

func (t *Translator) digits(s string) string {
	if !t.Persian() {
		return s
	}
	return persianDigits.Replace(s)
}

func templateData(params []string) map[string]any {
	if len(params) == 0 {
		return nil
	}

	data := make(map[string]any, len(params))
	for _, param := range params {
		name, value, ok := strings.Cut(param, "==")
		if !ok {
			continue
		}
		data[name] = value
	}
	return data
}

func parseTranslationFiles(bundle *i18n.Bundle) error {
	return fs.WalkDir(translations, "translation", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		data, err := translations.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if _, err := bundle.ParseMessageFileBytes(data, path); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	})
}
