package dto

import "github.com/go-playground/validator/v10"

// validate instancia compartida: cachea la metadata de structs, es segura
// para uso concurrente.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate evalúa las etiquetas `validate` de un request. Los campos
// decimal.Decimal no llevan etiquetas (validator no los introspecciona);
// esos se validan a mano en los casos de uso.
func Validate(v any) error {
	return validate.Struct(v)
}
