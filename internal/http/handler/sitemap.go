package handler

import (
	"github.com/gofiber/fiber/v2"

	"citycast/internal/service"
)

// Sitemap godoc
// @Summary Public sitemap
// @Tags site
// @Produce xml
// @Success 200 {string} string
// @Router /sitemap.xml [get]
func Sitemap(svc service.SitemapService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rc, err := svc.Open(c.UserContext())
		if err != nil {
			return writeServiceError(c, err)
		}
		c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
		c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
		return c.SendStream(rc)
	}
}
