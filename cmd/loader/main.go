package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/college-data/internal/config"
	"github.com/college-data/internal/db"
	"github.com/college-data/internal/loader"
	"github.com/college-data/internal/source"
)

var (
	// Global database connection
	dbConn *db.Connection
)

func main() {
	config.LoadEnv()

	var err error
	dbConn, err = db.NewConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbConn.Close()

	rootCmd := &cobra.Command{
		Use:   "loader",
		Short: "College statistics batch loaders",
		Long:  `Imports College Scorecard and IPEDS CSV extracts into the reporting database`,
	}

	rootCmd.AddCommand(createScorecardCmd())
	rootCmd.AddCommand(createIPEDSCmd())
	rootCmd.AddCommand(createPingCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLoader() *loader.Loader {
	batchSize := config.GetEnvInt("LOADER_BATCH_SIZE", loader.DefaultBatchSize)
	return loader.New(dbConn.DB, batchSize)
}

func createScorecardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scorecard [filename]",
		Short: "Import a College Scorecard CSV extract",
		Long:  `Loads institutions, locations, and yearly financial and admissions records from one MERGED<year>_PP.csv file`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := newLoader().Run(source.Scorecard, args[0]); err != nil {
				log.Fatalf("Scorecard load failed: %v", err)
			}
		},
	}
}

func createIPEDSCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ipeds [filename]",
		Short: "Import an IPEDS directory CSV file",
		Long:  `Loads yearly institutional classification records from one hd<year>.csv file; rows for unknown institutions are skipped`,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if _, err := newLoader().Run(source.IPEDS, args[0]); err != nil {
				log.Fatalf("IPEDS load failed: %v", err)
			}
		},
	}
}

// createPingCmd creates a command to test database connectivity
func createPingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Test database connectivity",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Database connection successful!")

			tables := []string{"Institutions", "Location", "IPEDS_Directory", "Financial_Data", "Admissions_Data"}
			for _, table := range tables {
				var count int
				err := dbConn.DB.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", table)).Scan(&count)
				if err != nil {
					log.Printf("Error counting %s records: %v", table, err)
					continue
				}
				fmt.Printf("%s: %d rows\n", table, count)
			}
		},
	}
}
