package cookie

import (
	"net/http"
	"time"

	"paseos-api/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

type TokenCookies struct {
	AccessToken   string
	RefreshToken  string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, tokens TokenCookies) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	setHTTPOnly(c, cfg, AccessTokenCookieName, tokens.AccessToken, int(tokens.AccessExpiry.Seconds()))
	setHTTPOnly(c, cfg, RefreshTokenCookieName, tokens.RefreshToken, int(tokens.RefreshExpiry.Seconds()))
}

func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	setHTTPOnly(c, cfg, AccessTokenCookieName, "", -1)
	setHTTPOnly(c, cfg, RefreshTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func setHTTPOnly(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func sameSiteMode(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
