package CronJobs

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// AggregateReconciler recomputes the vehicle and customer running totals
// from the source tables on a schedule. The per-request counter updates
// keep the totals current; this job repairs any drift left behind by
// partial failures.
type AggregateReconciler struct {
	cronScheduler  *cron.Cron
	db             *gorm.DB
	runImmediately bool
	jobID          cron.EntryID
}

// NewAggregateReconciler creates a new reconciler with the given configuration
func NewAggregateReconciler(db *gorm.DB, runImmediately bool) *AggregateReconciler {
	return &AggregateReconciler{
		cronScheduler:  cron.New(cron.WithSeconds()),
		db:             db,
		runImmediately: runImmediately,
	}
}

// Start schedules the nightly reconciliation run
func (r *AggregateReconciler) Start() error {
	var err error
	r.jobID, err = r.cronScheduler.AddFunc("0 0 2 * * *", func() {
		log.Println("Running scheduled aggregate reconciliation")
		if err := ReconcileAggregates(r.db); err != nil {
			log.Println("Aggregate reconciliation failed:", err)
		}
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	r.cronScheduler.Start()
	fmt.Println("Aggregate reconciler started - will run daily at 2:00 AM")

	if r.runImmediately {
		fmt.Println("Running initial aggregate reconciliation")
		if err := ReconcileAggregates(r.db); err != nil {
			log.Println("Aggregate reconciliation failed:", err)
		}
	}

	return nil
}

// Stop terminates the scheduler
func (r *AggregateReconciler) Stop() {
	r.cronScheduler.Stop()
}

// ReconcileAggregates rewrites every vehicle and customer counter from
// the trip, maintenance and spare part tables.
func ReconcileAggregates(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(`
			UPDATE vehicles SET
				total_trips = COALESCE((SELECT COUNT(*) FROM trips t
					WHERE t.vehicle_number = vehicles.vehicle_number AND t.deleted_at IS NULL), 0),
				total_km = COALESCE((SELECT SUM(t.distance_km) FROM trips t
					WHERE t.vehicle_number = vehicles.vehicle_number AND t.deleted_at IS NULL), 0),
				total_maintenance_cost =
					COALESCE((SELECT SUM(m.amount) FROM maintenance_events m
						WHERE m.vehicle_id = vehicles.id AND m.deleted_at IS NULL), 0) +
					COALESCE((SELECT SUM(s.cost * s.quantity) FROM spare_parts s
						WHERE s.vehicle_id = vehicles.id AND s.deleted_at IS NULL), 0)
			WHERE vehicles.deleted_at IS NULL
		`).Error
		if err != nil {
			return err
		}

		return tx.Exec(`
			UPDATE customers SET
				total_trips = COALESCE((SELECT COUNT(*) FROM trips t
					WHERE t.customer_id = customers.id AND t.deleted_at IS NULL), 0),
				total_billed = COALESCE((SELECT SUM(t.total_charged) FROM trips t
					WHERE t.customer_id = customers.id AND t.deleted_at IS NULL), 0),
				pending_balance = COALESCE((SELECT SUM(t.pending_amount) FROM trips t
					WHERE t.customer_id = customers.id AND t.deleted_at IS NULL), 0)
			WHERE customers.deleted_at IS NULL
		`).Error
	})
}
