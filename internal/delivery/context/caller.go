package context

import "github.com/labstack/echo/v4"

// KeyCallerUID is the echo.Context key for the verified caller's user id.
const KeyCallerUID = "caller_uid"

// SetCallerUID records the uid of a verified caller.
func SetCallerUID(c echo.Context, uid string) {
	c.Set(KeyCallerUID, uid)
}

// GetCallerUID returns the verified caller uid, or "" for anonymous callers.
func GetCallerUID(c echo.Context) string {
	uid, _ := c.Get(KeyCallerUID).(string)

	return uid
}
