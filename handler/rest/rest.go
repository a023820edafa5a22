package rest

import (
	"errors"
	"net/http"

	"woracle/core"
	"woracle/handler/render"

	"github.com/go-chi/chi"
)

// header carrying the caller's key id for governance calls
const headerOracleKey = "X-Oracle-Key"

// Handle handle rest api request
func Handle(oracleSrv core.IOracleService, governanceSrv core.IGovernanceService) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/decimals", decimalsHandler(oracleSrv))
	router.Get("/price", livePriceHandler(oracleSrv))
	router.Get("/latest-round-data", latestRoundDataHandler(oracleSrv))

	router.Post("/ceiling", setCeilingHandler(governanceSrv))
	router.Post("/ownership/transfer", transferOwnershipHandler(governanceSrv))
	router.Post("/ownership/accept", acceptOwnershipHandler(governanceSrv))
	router.Post("/ownership/renounce", renounceOwnershipHandler(governanceSrv))

	return router
}

func caller(r *http.Request) string {
	return r.Header.Get(headerOracleKey)
}
