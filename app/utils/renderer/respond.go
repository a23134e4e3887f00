package renderer

import (
	"log"
	"net/http"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/apperrors"
	"github.com/unrolled/render"
)

type errorBody struct {
	Kind    apperrors.Kind `json:"kind"`
	Message string         `json:"message"`
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

// Error writes the JSON error envelope for err with the status code its
// kind maps to. Store failures are logged with their cause; the cause
// never reaches the client.
func Error(rnd *render.Render, w http.ResponseWriter, r *http.Request, err error) {
	if apperrors.KindOf(err) == apperrors.KindStore {
		log.Printf("%s %s: %v", r.Method, r.URL.Path, err)
	}
	_ = rnd.JSON(w, apperrors.HTTPStatus(err), errorEnvelope{
		Error: errorBody{
			Kind:    apperrors.KindOf(err),
			Message: apperrors.MessageOf(err),
		},
	})
}
