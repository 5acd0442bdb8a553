package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jobledger/records-api/internal/core/domain"
	"github.com/jobledger/records-api/internal/core/ports"
)

const collectionJobs = "jobs"

type JobRepository struct {
	col *mongo.Collection
}

func NewJobRepository(db *mongo.Database) *JobRepository {
	return &JobRepository{col: db.Collection(collectionJobs)}
}

// Decimal fields are stored as Decimal128 so no value passes through a float.
type mongoJob struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	JobNumber   string               `bson:"job_number"`
	ClientName  string               `bson:"client_name"`
	JobRef      string               `bson:"job_ref"`
	M2Area      primitive.Decimal128 `bson:"m2_area"`
	HoursWorked primitive.Decimal128 `bson:"hours_worked"`
	DesignFee   primitive.Decimal128 `bson:"design_fee"`
	CreatedBy   string               `bson:"created_by"`
	CreatedAt   time.Time            `bson:"created_at"`
	UpdatedAt   time.Time            `bson:"updated_at"`
}

// Create inserts a new job document and sets job.ID.
func (r *JobRepository) Create(ctx context.Context, job *domain.Job) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := toMongoJob(job)
	if err != nil {
		return err
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		job.ID = oid.Hex()
	}
	return nil
}

// List returns one page of jobs, newest first, and the total count.
func (r *JobRepository) List(ctx context.Context, f ports.ListJobsFilter) ([]*domain.Job, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count jobs: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(f.Page-1) * int64(f.Limit)).
		SetLimit(int64(f.Limit))

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find jobs: %w", err)
	}
	defer cur.Close(ctx)

	jobs := make([]*domain.Job, 0, f.Limit)
	for cur.Next(ctx) {
		var doc mongoJob
		if err := cur.Decode(&doc); err != nil {
			return nil, 0, fmt.Errorf("decode job: %w", err)
		}
		job, err := fromMongoJob(doc)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, job)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate jobs: %w", err)
	}
	return jobs, total, nil
}

// EnsureIndexes creates necessary indexes on the jobs collection.
func (r *JobRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toMongoJob(j *domain.Job) (mongoJob, error) {
	area, err := toDecimal128(j.M2Area)
	if err != nil {
		return mongoJob{}, err
	}
	hours, err := toDecimal128(j.HoursWorked)
	if err != nil {
		return mongoJob{}, err
	}
	fee, err := toDecimal128(j.DesignFee)
	if err != nil {
		return mongoJob{}, err
	}
	return mongoJob{
		JobNumber:   j.JobNumber,
		ClientName:  j.ClientName,
		JobRef:      j.JobRef,
		M2Area:      area,
		HoursWorked: hours,
		DesignFee:   fee,
		CreatedBy:   j.CreatedBy,
		CreatedAt:   j.CreatedAt.UTC(),
		UpdatedAt:   j.UpdatedAt.UTC(),
	}, nil
}

func fromMongoJob(doc mongoJob) (*domain.Job, error) {
	area, err := decimal.NewFromString(doc.M2Area.String())
	if err != nil {
		return nil, fmt.Errorf("decode m2_area: %w", err)
	}
	hours, err := decimal.NewFromString(doc.HoursWorked.String())
	if err != nil {
		return nil, fmt.Errorf("decode hours_worked: %w", err)
	}
	fee, err := decimal.NewFromString(doc.DesignFee.String())
	if err != nil {
		return nil, fmt.Errorf("decode design_fee: %w", err)
	}
	return &domain.Job{
		ID:          doc.ID.Hex(),
		JobNumber:   doc.JobNumber,
		ClientName:  doc.ClientName,
		JobRef:      doc.JobRef,
		M2Area:      area,
		HoursWorked: hours,
		DesignFee:   fee,
		CreatedBy:   doc.CreatedBy,
		CreatedAt:   doc.CreatedAt.UTC(),
		UpdatedAt:   doc.UpdatedAt.UTC(),
	}, nil
}

func toDecimal128(d decimal.Decimal) (primitive.Decimal128, error) {
	v, err := primitive.ParseDecimal128(d.String())
	if err != nil {
		return primitive.Decimal128{}, fmt.Errorf("encode decimal %s: %w", d.String(), err)
	}
	return v, nil
}
