package routes

import (
	"saudeplus/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes         = "/quotes"
	PathSales          = "/sales"
	PathAuthorizations = "/authorizations"
)

func addCommerceRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, saleHandler *handlers.SaleHandler, authHandler *handlers.AuthorizationHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.CreateQuote)
		quotes.GET("/:quote_id", quoteHandler.GetQuote)
		quotes.PATCH("/:quote_id/approve", quoteHandler.ApproveQuote)
		quotes.PATCH("/:quote_id/reject", quoteHandler.RejectQuote)
		quotes.POST("/:quote_id/negotiate", quoteHandler.NegotiateQuote)
	}

	sales := rg.Group(PathSales)
	{
		sales.POST("", saleHandler.IssueSale)
		sales.GET("/:sale_id", saleHandler.GetSale)
		sales.PATCH("/:sale_id/cancel", saleHandler.CancelSale)
		sales.PATCH("/:sale_id/reverse", saleHandler.ReverseSale)
	}

	authorizations := rg.Group(PathAuthorizations)
	{
		authorizations.GET("/:authorization_id", authHandler.GetAuthorization)
		authorizations.GET("/:authorization_id/voucher", authHandler.GetAuthorizationVoucher)
		authorizations.PATCH("/:authorization_id/realize", authHandler.RealizeAuthorization)
		authorizations.PATCH("/:authorization_id/bill", authHandler.BillAuthorization)
		authorizations.PATCH("/:authorization_id/pay", authHandler.PayAuthorization)
		authorizations.PATCH("/:authorization_id/cancel", authHandler.CancelAuthorization)
		authorizations.PATCH("/:authorization_id/reverse", authHandler.ReverseAuthorization)
	}
}
