package main

import (
	"log"
	"net/http"
	"os"

	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/cmd"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/configs"
	"github.com/AliAbdullahpgr/ahmad-raffay-ecommerce/app/routes"
)

func main() {

	env := configs.LoadEnv()
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatalf("Session keys not configured: %v (run `%s generate-keys`)", err, os.Args[0])
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("✅ Database connected.")

	router := routes.NewRouter(db, keys)

	server := http.Server{
		Addr:    env.Port,
		Handler: router,
	}

	log.Printf("🚀 Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Println("failed to connecting to the server")
	}

}
