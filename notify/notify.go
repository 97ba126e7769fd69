// notify.go - Publishes kitchen notifications over MQTT
//
// Kitchen display clients subscribe to the kitchen/orders topic and refresh
// whenever an order lands. Notifications are best effort: when no broker is
// reachable the service keeps running and publishing becomes a no-op, so
// order placement never fails because of the broker.

package notify // Declares the package name

import ( // Import required packages
	"encoding/json" // For encoding event payloads
	"time"          // For the connect timeout

	mqtt "github.com/eclipse/paho.mqtt.golang" // MQTT client library
)

const ordersTopic = "kitchen/orders" // Topic kitchen displays subscribe to

var client mqtt.Client // Global MQTT client (nil when notifications are disabled)

// OrderPlaced is the event sent to the kitchen when an order is stored.
type OrderPlaced struct {
	CustomerName string  `json:"customer_name"` // Who placed the order
	Items        int     `json:"items"`         // Number of order lines
	TotalCost    float64 `json:"total_cost"`    // Sum of line totals in INR
}

func Connect(broker string) error { // Connect establishes the MQTT session
	opts := mqtt.NewClientOptions(). // Build client options
						AddBroker(broker).                 // Broker address from config
						SetClientID("restaurant-backend"). // Stable client ID
						SetConnectTimeout(5 * time.Second) // Don't hang startup on a dead broker
	c := mqtt.NewClient(opts)
	if tok := c.Connect(); tok.Wait() && tok.Error() != nil { // Connect and wait
		return tok.Error()
	}
	client = c // Remember the connected client
	return nil
}

// PublishOrderPlaced sends an OrderPlaced event to the kitchen topic.
func PublishOrderPlaced(event OrderPlaced) error {
	if client == nil || !client.IsConnected() { // Notifications disabled
		return nil
	}
	payload, err := json.Marshal(event) // Encode event as JSON
	if err != nil {
		return err
	}
	tok := client.Publish(ordersTopic, 0, false, payload) // QoS 0, not retained
	tok.Wait()
	return tok.Error()
}
