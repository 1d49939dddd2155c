package postgresql

import "fmt"

type queryStage string

const (
	stageBuild   queryStage = "build"
	stageExecute queryStage = "execute"
	stageScan    queryStage = "scan"
	stageCollect queryStage = "collect"
)

// QueryError tells which table and which step of a query failed.
type QueryError struct {
	Table string
	Stage queryStage
	Err   error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s query on %s: %v", e.Stage, e.Table, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

func queryError(table string, stage queryStage, err error) error {
	return &QueryError{Table: table, Stage: stage, Err: err}
}
