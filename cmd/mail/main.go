package main

import (
	"context"
	"encoding/json"
	"html/template"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wneessen/go-mail"

	"github.com/grupo-solmar/staff-scheduler/backend/internal/config"
	"github.com/grupo-solmar/staff-scheduler/backend/internal/domain"
)

// Los cuerpos van embebidos en el binario; el worker no depende de
// archivos de plantilla al lado del ejecutable.
var createUserTemplate = template.Must(template.New("create_user").Parse(`
<p>Hola {{.FullName}},</p>
<p>Te creamos una cuenta en el sistema de horarios.</p>
<p>Usuario: <strong>{{.Username}}</strong><br>
Contraseña: <strong>{{.Password}}</strong></p>
<p>Cambiá la contraseña después de iniciar sesión por primera vez.</p>
`))

var resetPasswordTemplate = template.Must(template.New("reset_password").Parse(`
<p>Hola {{.FullName}},</p>
<p>Tu código para restablecer la contraseña es <strong>{{.OTP}}</strong>.</p>
<p>Vence en {{.Expiration}} minutos. Si no lo pediste, ignorá este correo.</p>
`))

func main() {
	/**********************************************
	 * Crear el logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	/**********************************************
	 * Cargar la configuración
	 **********************************************/
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("no se pudo cargar la configuración", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * Crear el cliente de correo
	 **********************************************/
	client, err := mail.NewClient(cfg.Email.SMTP.Host,
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithSSL(),
		mail.WithPort(cfg.Email.SMTP.Port),
		mail.WithUsername(cfg.Email.SMTP.Username),
		mail.WithPassword(cfg.Email.SMTP.Password),
	)
	if err != nil {
		logger.Error("no se pudo crear el cliente de correo", slog.String("error", err.Error()))
		return
	}
	defer client.Close()

	// Validar la conexión al servidor de correo antes de consumir nada
	clientDialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Email.SMTP.DialTimeout)*time.Second)
	defer cancel()
	if err := client.DialWithContext(clientDialCtx); err != nil {
		logger.Error("no se pudo conectar al servidor de correo", slog.String("error", err.Error()))
		return
	}

	/**********************************************
	 * Conectar a RabbitMQ
	 **********************************************/
	conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
	if err != nil {
		logger.Error("no se pudo conectar a RabbitMQ", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		logger.Error("no se pudo abrir el canal", slog.String("error", err.Error()))
		return
	}
	defer ch.Close()

	// Declarar la cola (idempotente, el api también la declara)
	q, err := ch.QueueDeclare(
		"email_queue",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("no se pudo declarar la cola", slog.String("error", err.Error()))
		return
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	msgs, err := ch.Consume(
		q.Name,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		logger.Error("no se pudo consumir la cola", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				logger.Info("mensaje recibido", slog.String("message", string(msg.Body)))

				mailMessage := domain.MailMessage{}
				if err := json.Unmarshal(msg.Body, &mailMessage); err != nil {
					logger.Error("no se pudo deserializar el mensaje", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				m := mail.NewMsg()
				if err := m.From(cfg.Email.SMTP.Username); err != nil {
					logger.Error("no se pudo fijar el remitente", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}
				if err := m.To(mailMessage.To); err != nil {
					logger.Error("no se pudo fijar el destinatario", slog.String("error", err.Error()))
					_ = msg.Nack(false, false)
					continue
				}

				// El cuerpo depende del tipo de mensaje
				switch mailMessage.Type {
				case "create_user":
					if err := m.SetBodyHTMLTemplate(createUserTemplate, mailMessage.Data); err != nil {
						logger.Error("no se pudo armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Sistema de horarios - Cuenta nueva")
				case "reset_password":
					if err := m.SetBodyHTMLTemplate(resetPasswordTemplate, mailMessage.Data); err != nil {
						logger.Error("no se pudo armar el cuerpo del correo", slog.String("error", err.Error()))
						_ = msg.Nack(false, false)
						continue
					}
					m.Subject("Sistema de horarios - Restablecer contraseña")
				default:
					logger.Error("tipo de correo no soportado", slog.String("type", mailMessage.Type))
					_ = msg.Nack(false, false)
					continue
				}

				if err := client.DialAndSend(m); err != nil {
					logger.Error("el envío del correo falló", slog.String("error", err.Error()))
					_ = msg.Nack(false, true) // reencolar para reintentar
					continue
				}

				_ = msg.Ack(false)
			}
		}
	}()

	logger.Info("esperando mensajes... (CTRL+C para salir)")
	<-sigChan

	slog.Info("apagando el mail worker...")
	cancel()
	wg.Wait()
	slog.Info("mail worker apagado correctamente")
}
