// Package mongodb provides connection bootstrap for the document database
// backing the notification store.
//
// Configuration comes from the environment via pkg/config:
//
//	var cfg mongodb.Config
//	config.MustLoad(&cfg)
//
//	db, err := mongodb.NewDatabase(ctx, cfg)
//	if err != nil {
//	    // the process should not start without its store
//	}
//
// Connection attempts are retried to ride out transient startup races with
// the database container; a persistent failure is a configuration error and
// surfaces as ErrFailedToConnect.
package mongodb
