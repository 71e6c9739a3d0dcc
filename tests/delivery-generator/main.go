package main

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type DeliveryUpdate struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

var statuses = []string{"Pending", "PickedUp", "InTransit", "OutForDelivery", "Delivered"}

// Идентификаторы существующих заказов, чтобы часть обновлений находила цель
var knownOrders = []string{
	"6f1c1f9e-0b6a-4f4f-9d1c-0a1b2c3d4e5f",
	"aa7b8c9d-1e2f-4a5b-8c9d-0e1f2a3b4c5d",
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomUpdate() DeliveryUpdate {
	orderID := knownOrders[rand.Intn(len(knownOrders))]
	// иногда неизвестный заказ, должен уехать в DLQ
	if rand.Intn(5) == 0 {
		orderID = randomString(16)
	}
	return DeliveryUpdate{
		OrderID: orderID,
		Status:  statuses[rand.Intn(len(statuses))],
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "delivery-updates",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			update := generateRandomUpdate()
			data, _ := json.Marshal(update)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("update generated", update.OrderID, update.Status)
		case <-ctx.Done():
			return
		}
	}
}
