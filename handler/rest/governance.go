package rest

import (
	"encoding/json"
	"net/http"

	"woracle/core"
	"woracle/handler/render"
	"woracle/pkg/number"

	"github.com/shopspring/decimal"
)

func setCeilingHandler(governanceSrv core.IGovernanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			// natural units, e.g. "1.5"
			Ceiling decimal.Decimal `json:"ceiling"`
		}
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := governanceSrv.SetCeiling(r.Context(), caller(r), number.ToScaled(params.Ceiling)); err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{"ceiling": params.Ceiling})
	}
}

func transferOwnershipHandler(governanceSrv core.IGovernanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params struct {
			Nominee string `json:"nominee"`
		}
		if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
			render.BadRequest(w, err)
			return
		}

		if err := governanceSrv.TransferOwnership(r.Context(), caller(r), params.Nominee); err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{"pending_owner": params.Nominee})
	}
}

func acceptOwnershipHandler(governanceSrv core.IGovernanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := governanceSrv.AcceptOwnership(r.Context(), caller(r)); err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{"owner": caller(r)})
	}
}

func renounceOwnershipHandler(governanceSrv core.IGovernanceService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// always rejected, kept for interface completeness
		if err := governanceSrv.RenounceOwnership(r.Context(), caller(r)); err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, render.H{})
	}
}
