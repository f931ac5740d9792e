package validator

import (
	"github.com/google/uuid"

	"github.com/kaleidos/skame/pkg/schema"
)

// UUID accepts strings in the canonical 8-4-4-4-12 form.
func UUID(opts ...schema.Option) schema.Validator {
	r := rule{name: "uuid", template: MsgUUID, key: KeyUUID}
	return check(r, isCanonicalUUID, opts)
}

// ParseUUID converts a canonical UUID string into a uuid.UUID.
func ParseUUID(opts ...schema.Option) schema.Validator {
	step := schema.Convert(func(value string) (uuid.UUID, error) {
		if !isCanonicalUUID(value) {
			return uuid.Nil, schema.Conversionf(value, "uuid", MsgUUID)
		}
		return uuid.Parse(value)
	})
	base := []schema.Option{schema.WithTranslationKey(KeyUUID)}
	return schema.PipeWith([]schema.Step{step}, append(base, opts...)...)
}

// isCanonicalUUID rejects on length and hyphen positions before parsing.
func isCanonicalUUID(value string) bool {
	if len(value) != 36 {
		return false
	}
	if value[8] != '-' || value[13] != '-' || value[18] != '-' || value[23] != '-' {
		return false
	}
	_, err := uuid.Parse(value)
	return err == nil
}
