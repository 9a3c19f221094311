package appointment

import "github.com/jpinedac/BRB-AgendaService/pkg/txmanager"

// DBExecutor reutilizamos la interfaz de ejecución del txmanager
type DBExecutor = txmanager.DBExecutor
