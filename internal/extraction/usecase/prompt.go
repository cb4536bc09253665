package usecase

import (
	"fmt"
	"time"
)

const classifySystemPrompt = `Tu es un assistant de planification intelligent et très précis.
Tu reçois des notes en vrac (courses, rendez-vous, idées, rappels) dictées ou tapées par l'utilisateur.

Découpe le texte en éléments indépendants et classe chacun dans une des catégories :
- "agenda" : événement daté (rendez-vous, réunion, cours)
- "to_do" : action à faire, avec une priorité de 1 (basse) à 3 (haute)
- "note" : information à retenir, sans action ni date

Réponds avec une courte phrase de résumé suivie d'un tableau JSON strict, un objet par élément :
[
  {"category": "agenda", "text": "...", "datetime_raw": "texte de date d'origine", "datetime_iso": "2025-01-15T15:00:00" ou null},
  {"category": "to_do", "text": "...", "priority": 2},
  {"category": "note", "text": "..."}
]

Règles :
- "datetime_raw" reprend la formulation exacte de l'utilisateur ("demain à 15h", "lundi prochain").
- "datetime_iso" est ta résolution en ISO 8601, ou null si tu n'es pas sûr.
- Ne fusionne jamais deux éléments distincts. N'invente rien.`

// buildClassifyPrompt renders the user message with the reference time the
// model should resolve relative dates against.
func buildClassifyPrompt(text string, now time.Time) string {
	return fmt.Sprintf("Nous sommes %s (%s).\n\nTexte à analyser :\n%s",
		now.Format("Monday 2 January 2006, 15:04"),
		now.Format(time.RFC3339),
		text,
	)
}
