package leads

import (
	"context"

	"github.com/ferchoba/ProyRemodelacion-sub000/internal/domain"
	"github.com/ferchoba/ProyRemodelacion-sub000/pkg/logger"
)

// PuntajeInteractivo valor registrado cuando la aceptación vino del desafío
// interactivo: ese tier no reporta score.
const PuntajeInteractivo = -1

// SpamGuard máquina de dos tiers por envío: primero el desafío invisible y,
// si no convence, el interactivo. Cada tier se intenta a lo sumo una vez;
// no hay reintentos.
type SpamGuard struct {
	invisible   CaptchaVerifier
	interactivo CaptchaVerifier
	minScore    float64
	log         *logger.Logger
}

// NewSpamGuard construye el guard. minScore es el umbral de aceptación del
// tier invisible (0.5 en producción).
func NewSpamGuard(invisible, interactivo CaptchaVerifier, minScore float64, log *logger.Logger) *SpamGuard {
	return &SpamGuard{invisible: invisible, interactivo: interactivo, minScore: minScore, log: log}
}

// Check verifica el envío contra ambos tiers. Devuelve el puntaje a registrar
// (score del tier invisible, o PuntajeInteractivo si aceptó el interactivo) o
// domain.ErrVerificationFailed si ninguno acepta.
//
// Tier invisible: acepta solo con success, score >= minScore y action igual al
// contexto del formulario. Cualquier otra cosa (score bajo, action ajena,
// falla de red) cae al tier interactivo.
// Tier interactivo: acepta con success a secas; sin token interactivo el
// envío se rechaza, porque el cliente solo renderiza ese desafío tras un
// rechazo del invisible.
func (g *SpamGuard) Check(ctx context.Context, accion, tokenInvisible, tokenInteractivo string) (float64, error) {
	if tokenInvisible != "" {
		res, err := g.invisible.Verify(ctx, tokenInvisible)
		switch {
		case err != nil:
			g.log.Warn().Err(err).Str("accion", accion).
				Msg("verificación invisible no disponible; pasando al tier interactivo")
		case res.Success && res.Score >= g.minScore && res.Action == accion:
			return res.Score, nil
		default:
			g.log.Debug().
				Float64("score", res.Score).
				Str("action", res.Action).
				Str("accion_esperada", accion).
				Msg("tier invisible no aceptó; pasando al interactivo")
		}
	}

	if tokenInteractivo == "" {
		return 0, domain.ErrVerificationFailed
	}
	res, err := g.interactivo.Verify(ctx, tokenInteractivo)
	if err != nil {
		g.log.Warn().Err(err).Str("accion", accion).Msg("verificación interactiva no disponible")
		return 0, domain.ErrVerificationFailed
	}
	if !res.Success {
		return 0, domain.ErrVerificationFailed
	}
	return PuntajeInteractivo, nil
}
