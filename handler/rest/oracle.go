package rest

import (
	"net/http"

	"woracle/core"
	"woracle/handler/render"
	"woracle/handler/views"
	"woracle/pkg/number"
)

func decimalsHandler(oracleSrv core.IOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, render.H{"decimals": oracleSrv.Decimals()})
	}
}

func livePriceHandler(oracleSrv core.IOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		price, err := oracleSrv.LivePrice(r.Context())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, views.Price{
			Price:    price,
			Value:    number.FromScaled(price),
			Decimals: oracleSrv.Decimals(),
		})
	}
}

func latestRoundDataHandler(oracleSrv core.IOracleService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := oracleSrv.LatestRoundData(r.Context())
		if err != nil {
			render.Err(w, err)
			return
		}

		render.JSON(w, views.RoundData{
			RoundData: *data,
			Decimals:  oracleSrv.Decimals(),
		})
	}
}
