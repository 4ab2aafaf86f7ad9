package tokens

import (
	"math"
	"reflect"
	"unicode"

	goerrors "github.com/goliatone/go-errors"
)

// payloadTagKey is the struct tag consumed by the payload marshaller. A field
// tagged `claim:"-"` never enters a token and is never restored on extraction.
const payloadTagKey = "claim"

// MarshalPayload converts a typed payload struct into a claim map. Fields are
// visited in declaration order; unexported fields and fields tagged
// `claim:"-"` are skipped. Values pass through unchanged, value encoding is
// the signing backend's problem.
func MarshalPayload(payload any) (map[string]any, error) {
	rv := reflect.ValueOf(payload)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, goerrors.New("payload must not be a nil pointer", goerrors.CategoryBadInput)
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil, goerrors.New("payload must be a struct or struct pointer", goerrors.CategoryBadInput)
	}

	rt := rv.Type()
	claims := make(map[string]any, rt.NumField())

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name, ok := payloadClaimName(field)
		if !ok {
			continue
		}
		claims[name] = rv.Field(i).Interface()
	}

	return claims, nil
}

// UnmarshalPayload fills target, a non-nil struct pointer, from a claim map.
// Reserved claims and fields tagged `claim:"-"` are skipped, claims without a
// matching field are ignored so payload shapes can evolve. Individual fields
// that cannot take the claim value are skipped rather than failing the whole
// extraction.
func UnmarshalPayload(claims map[string]any, target any) error {
	return unmarshalPayload(claims, target, defLogger{})
}

func unmarshalPayload(claims map[string]any, target any, logger Logger) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrExtraction
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrExtraction
	}

	rt := rv.Type()
	fields := make(map[string]int, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		name, ok := payloadClaimName(rt.Field(i))
		if !ok {
			continue
		}
		fields[name] = i
	}

	for name, value := range claims {
		if IsReservedClaim(name) {
			continue
		}

		idx, ok := fields[name]
		if !ok {
			continue
		}

		if err := assignClaim(rv.Field(idx), value); err != nil {
			logger.Error("Unable to assign claim %q to field %s: %v", name, rt.Field(idx).Name, err)
		}
	}

	return nil
}

// payloadClaimName resolves the claim name for a struct field, or reports
// that the field does not participate in the payload.
func payloadClaimName(field reflect.StructField) (string, bool) {
	if field.PkgPath != "" {
		return "", false
	}

	tag := field.Tag.Get(payloadTagKey)
	if tag == "-" {
		return "", false
	}
	if tag != "" {
		return tag, true
	}

	name := []rune(field.Name)
	name[0] = unicode.ToLower(name[0])
	return string(name), true
}

func assignClaim(fv reflect.Value, value any) error {
	if value == nil {
		return nil
	}
	if !fv.CanSet() {
		return goerrors.New("field is not settable", goerrors.CategoryBadInput)
	}

	vv := reflect.ValueOf(value)
	if vv.Type().AssignableTo(fv.Type()) {
		fv.Set(vv)
		return nil
	}

	// JSON backends decode every number as float64, coerce those back into
	// the numeric kind the field declares. Values that do not fit the field
	// fall through to the mismatch error instead of silently wrapping.
	switch fv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f, ok := asFloat(value); ok && f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 && !fv.OverflowInt(int64(f)) {
			fv.SetInt(int64(f))
			return nil
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f, ok := asFloat(value); ok && f == math.Trunc(f) && f >= 0 && f < math.MaxUint64 && !fv.OverflowUint(uint64(f)) {
			fv.SetUint(uint64(f))
			return nil
		}
	case reflect.Float32, reflect.Float64:
		if f, ok := asFloat(value); ok && !fv.OverflowFloat(f) {
			fv.SetFloat(f)
			return nil
		}
	case reflect.String:
		if s, ok := value.(string); ok {
			fv.SetString(s)
			return nil
		}
	}

	return goerrors.New("claim value type mismatch", goerrors.CategoryBadInput)
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}
