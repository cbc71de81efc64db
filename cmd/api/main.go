package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "github.com/Danielteini939/Emprest/internal/adapter/http"
	appmw "github.com/Danielteini939/Emprest/internal/adapter/middleware"
	"github.com/Danielteini939/Emprest/internal/adapter/repository/sqldb"
	"github.com/Danielteini939/Emprest/internal/config"
	"github.com/Danielteini939/Emprest/internal/domain/lending"
	"github.com/Danielteini939/Emprest/internal/infrastructure/cache"
	"github.com/Danielteini939/Emprest/internal/infrastructure/db"
	"github.com/Danielteini939/Emprest/internal/usecase/borrower"
	"github.com/Danielteini939/Emprest/internal/usecase/interchange"
	"github.com/Danielteini939/Emprest/internal/usecase/loan"
	"github.com/Danielteini939/Emprest/internal/usecase/payment"
	"github.com/Danielteini939/Emprest/internal/usecase/report"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	if err := gdb.AutoMigrate(&lending.Borrower{}, &lending.Loan{}, &lending.Payment{}); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	borrowers := sqldb.NewBorrowerRepository(gdb)
	loans := sqldb.NewLoanRepository(gdb)
	payments := sqldb.NewPaymentRepository(gdb)
	txn := sqldb.NewGormUoW(gdb)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger(), echomw.Recover())

	// redis is optional; without it mutating requests are simply not deduped
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		e.Use(appmw.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	}

	httpadp.Register(e, httpadp.Handlers{
		Base:        httpadp.NewHandler(cfg.Settings),
		Borrowers:   httpadp.NewBorrowerHandler(borrower.NewUsecase(borrowers, loans)),
		Loans:       httpadp.NewLoanHandler(loan.NewUsecase(borrowers, loans, payments, txn)),
		Payments:    httpadp.NewPaymentHandler(payment.NewUsecase(loans, payments, txn)),
		Reports:     httpadp.NewReportHandler(report.NewUsecase(borrowers, loans, payments), cfg.UpcomingWindowDays),
		Interchange: httpadp.NewInterchangeHandler(interchange.NewUsecase(borrowers, loans, payments, txn)),
	})

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
