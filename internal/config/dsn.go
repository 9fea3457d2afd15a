package config

import "fmt"

// BuildDSN assembles a MySQL DSN from the structured database config.
// Returns "" when the config is too incomplete to connect.
func BuildDSN(db DatabaseConfig) string {
	if db.Name == "" {
		return ""
	}
	host := db.Host
	if host == "" {
		host = "127.0.0.1"
	}
	port := db.Port
	if port == 0 {
		port = 3306
	}
	user := db.User
	if user == "" {
		user = "root"
	}
	charset := db.Charset
	if charset == "" {
		charset = "utf8mb4"
	}

	cred := user
	if db.Password != "" {
		cred = user + ":" + db.Password
	}
	return fmt.Sprintf("%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
		cred, host, port, db.Name, charset)
}
