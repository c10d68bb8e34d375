package contextkeys

type contextKey string

// DBContextKey stores the request-scoped *gorm.DB (pool or transaction).
const DBContextKey = contextKey("db")
