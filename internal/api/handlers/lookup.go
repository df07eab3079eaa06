package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/irfndi/oddsframe/internal/lookup"
)

// LookupHandler serves the reference enumerations queries are validated against.
type LookupHandler struct{}

func NewLookupHandler() *LookupHandler {
	return &LookupHandler{}
}

type listResponse struct {
	Data  []string `json:"data"`
	Total int      `json:"total"`
}

func list(c *gin.Context, values []string) {
	c.JSON(http.StatusOK, listResponse{Data: values, Total: len(values)})
}

func (h *LookupHandler) GetCountries(c *gin.Context) {
	list(c, lookup.Countries())
}

func (h *LookupHandler) GetBookmakers(c *gin.Context) {
	list(c, lookup.Bookmakers())
}

// MarketsResponse lists the market codes and the open/closed tags.
type MarketsResponse struct {
	Markets   []string `json:"markets"`
	OddsTimes []string `json:"odds_times"`
}

func (h *LookupHandler) GetMarkets(c *gin.Context) {
	c.JSON(http.StatusOK, MarketsResponse{
		Markets:   lookup.Markets(),
		OddsTimes: lookup.OddsTimes(),
	})
}

// StatusInfo is one match status code.
type StatusInfo struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

func (h *LookupHandler) GetStatuses(c *gin.Context) {
	codes := lookup.StatusCodes()
	out := make([]StatusInfo, len(codes))
	for i, s := range codes {
		out[i] = StatusInfo{Code: int(s), Description: s.Description()}
	}
	c.JSON(http.StatusOK, gin.H{"data": out, "total": len(out)})
}
