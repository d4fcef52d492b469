package user

import (
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
)

// DBExecutor интерфейс для выполнения запросов (БД или транзакция из контекста)
type DBExecutor = dbmetrics.DBExecutor
