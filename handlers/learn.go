package handlers

import (
	"net/http"

	"carbontrack-api/services"

	"github.com/gin-gonic/gin"
)

// Learn endpoints serve the static educational content: the factor tables
// behind the calculators and the reduction tips. Public, no auth.

func GetFactors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"factors": services.FactorCatalog()})
}

func GetTips(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tips":   services.ReductionTips(),
		"quotes": services.Quotes(),
	})
}
