package leads

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/application/dto"
)

// validate instancia única con los validadores propios registrados.
var validate = newValidate()

var (
	// nombreRe letras (incluye acentos del español), espacios y apóstrofe.
	nombreRe = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚáéíóúÑñÜü' ]+$`)
	// telefonoRe celular (3XXXXXXXXX) o fijo (60XXXXXXXX) colombiano,
	// con prefijo +57 opcional, ya sin separadores.
	telefonoRe    = regexp.MustCompile(`^(\+?57)?(3\d{9}|60\d{8})$`)
	telefonoSepRe = regexp.MustCompile(`[\s().\-]`)
)

func newValidate() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Reportar los campos por su nombre JSON, no por el del struct.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("nombre_persona", func(fl validator.FieldLevel) bool {
		return nombreRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("telefono_co", func(fl validator.FieldLevel) bool {
		tel := telefonoSepRe.ReplaceAllString(fl.Field().String(), "")
		return telefonoRe.MatchString(tel)
	})
	// fecha_no_pasada: YYYY-MM-DD, comparada a granularidad de día. Hoy es válido.
	_ = v.RegisterValidation("fecha_no_pasada", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if _, err := time.Parse("2006-01-02", s); err != nil {
			return false
		}
		return s >= time.Now().Format("2006-01-02")
	})

	return v
}

// ValidationErrors conjunto completo de errores de campo de un envío.
// La validación nunca es parcial: o el registro queda normalizado o se
// devuelven todos los errores a la vez.
type ValidationErrors []dto.FieldError

func (ve ValidationErrors) Error() string {
	campos := make([]string, 0, len(ve))
	for _, fe := range ve {
		campos = append(campos, fe.Campo)
	}
	return "validación fallida: " + strings.Join(campos, ", ")
}

// Campos devuelve los errores como slice plano para la respuesta HTTP.
func (ve ValidationErrors) Campos() []dto.FieldError {
	return []dto.FieldError(ve)
}

// Validar aplica el esquema del struct y devuelve nil o el set completo de errores.
func Validar(in any) ValidationErrors {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return ValidationErrors{{Campo: "", Mensaje: "entrada inválida"}}
	}
	var out ValidationErrors
	for _, fe := range err.(validator.ValidationErrors) {
		out = append(out, dto.FieldError{Campo: fe.Field(), Mensaje: mensajeCampo(fe)})
	}
	return out
}

func mensajeCampo(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "este campo es obligatorio"
	case "min":
		return fmt.Sprintf("debe tener al menos %s caracteres", fe.Param())
	case "max":
		return fmt.Sprintf("no puede exceder %s caracteres", fe.Param())
	case "email":
		return "debe ser un correo válido"
	case "nombre_persona":
		return "solo se permiten letras y espacios"
	case "telefono_co":
		return "debe ser un número colombiano válido (celular o fijo)"
	case "fecha_no_pasada":
		return "la fecha no puede estar en el pasado (formato YYYY-MM-DD)"
	case "oneof":
		return fmt.Sprintf("debe ser uno de: %s", fe.Param())
	default:
		return "valor inválido"
	}
}
