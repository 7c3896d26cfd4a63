package recordstore

import (
	"afiatrack-service/internal/app/config"
	"afiatrack-service/internal/app/contracts"
	"afiatrack-service/internal/app/models"
	"afiatrack-service/internal/pkg/constvars"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Backend holds what every collection store needs, so one call per
// collection is enough to open it with the configured driver.
type Backend struct {
	Driver          string
	DataDir         string
	FallbackEnabled bool
	Database        *mongo.Database
	Fallback        *FallbackSwitch
	Log             *zap.Logger
}

// NewBackend resolves the effective driver. A mongo driver whose client
// could not be created falls back to files right away when allowed.
func NewBackend(logger *zap.Logger, internalConfig *config.InternalConfig, mongoClient *mongo.Client) *Backend {
	backend := &Backend{
		Driver:          internalConfig.Store.Driver,
		DataDir:         internalConfig.Store.DataDir,
		FallbackEnabled: internalConfig.Store.FallbackEnabled,
		Fallback:        NewFallbackSwitch(logger),
		Log:             logger,
	}

	if backend.Driver != constvars.StoreDriverMongo {
		backend.Driver = constvars.StoreDriverFile
		return backend
	}

	if mongoClient != nil {
		backend.Database = mongoClient.Database(internalConfig.MongoDB.DBName)
		return backend
	}

	if !backend.FallbackEnabled {
		logger.Fatal("recordstore.NewBackend mongo driver selected without a mongo client")
	}
	backend.Fallback.Trip(constvars.StoreDriverMongo, nil)
	return backend
}

// Open returns the store for one collection.
func Open[T models.Record](b *Backend, collection string) contracts.RecordStore[T] {
	local := NewFileStore[T](b.Log, b.DataDir, collection)
	if b.Driver == constvars.StoreDriverFile {
		return local
	}

	var primary contracts.RecordStore[T]
	if b.Database != nil {
		primary = NewMongoStore[T](b.Database, collection)
	} else {
		primary = local
	}

	if !b.FallbackEnabled {
		return primary
	}
	return NewFallbackStore(primary, local, b.Fallback)
}

func (b *Backend) FallbackActive() bool {
	return b.Fallback.Active()
}

// Stores bundles one store per collection.
type Stores struct {
	Users             contracts.RecordStore[*models.UserCredentials]
	Profiles          contracts.RecordStore[*models.UserProfile]
	Settings          contracts.RecordStore[*models.UserSettings]
	Appointments      contracts.RecordStore[*models.UserAppointment]
	Medications       contracts.RecordStore[*models.UserMedication]
	Documents         contracts.RecordStore[*models.UserDocument]
	HealthData        contracts.RecordStore[*models.UserHealthData]
	VerificationCodes contracts.RecordStore[*models.VerificationCode]
}

func NewStores(b *Backend) *Stores {
	return &Stores{
		Users:             Open[*models.UserCredentials](b, constvars.CollectionUsers),
		Profiles:          Open[*models.UserProfile](b, constvars.CollectionProfiles),
		Settings:          Open[*models.UserSettings](b, constvars.CollectionSettings),
		Appointments:      Open[*models.UserAppointment](b, constvars.CollectionAppointments),
		Medications:       Open[*models.UserMedication](b, constvars.CollectionMedications),
		Documents:         Open[*models.UserDocument](b, constvars.CollectionDocuments),
		HealthData:        Open[*models.UserHealthData](b, constvars.CollectionHealthData),
		VerificationCodes: Open[*models.VerificationCode](b, constvars.CollectionVerificationCodes),
	}
}
