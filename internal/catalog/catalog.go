package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	"git.appkode.ru/pub/go/failure"
	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"

	"dnf_market/internal/domain/entity"
	"dnf_market/pkg/errcodes"
)

//nolint:gochecknoglobals
var (
	json     = jsoniter.ConfigCompatibleWithStandardLibrary
	validate = validator.New(validator.WithRequiredStructEnabled())
)

//go:embed items.json
var defaultItems []byte

// Default возвращает встроенный список популярных айтемов.
func Default() ([]entity.CashItem, error) {
	return Parse(defaultItems)
}

// Parse декодирует и валидирует каталог. Имена айтемов уникальны:
// по ним индексируется результат расчёта.
func Parse(data []byte) ([]entity.CashItem, error) {
	var defs []Definition

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(&defs); err != nil {
		return nil, invalidCatalog(fmt.Errorf("json.Decode: %w", err))
	}

	return FromDefinitions(defs)
}

func FromDefinitions(defs []Definition) ([]entity.CashItem, error) {
	items := make([]entity.CashItem, 0, len(defs))
	seen := make(map[string]struct{}, len(defs))

	for i, d := range defs {
		if err := validate.Struct(d); err != nil {
			return nil, invalidCatalog(fmt.Errorf("item #%d: %w", i, err))
		}

		if _, ok := seen[d.Name]; ok {
			return nil, invalidCatalog(fmt.Errorf("item #%d: duplicate name %q", i, d.Name))
		}

		seen[d.Name] = struct{}{}

		item, err := d.ToEntity()
		if err != nil {
			return nil, invalidCatalog(fmt.Errorf("item #%d: %w", i, err))
		}

		items = append(items, item)
	}

	return items, nil
}

func invalidCatalog(err error) error {
	return failure.NewInvalidArgumentErrorFromError(err, failure.WithCode(errcodes.InvalidCatalog))
}
