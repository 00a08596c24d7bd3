package database

import (
	"context"
	"database/sql"
)

// schema holds the idempotent table definitions. Bookings reference their
// owning user through a real foreign key; the event_type column is a plain
// label with no key into events, matching the original data model.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username      VARCHAR(190)    NOT NULL,
		password_hash VARCHAR(255)    NOT NULL,
		role          VARCHAR(16)     NOT NULL DEFAULT 'user',
		created_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS events (
		id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		title       VARCHAR(255)    NOT NULL,
		date        VARCHAR(10)     NOT NULL,
		time        VARCHAR(5)      NOT NULL DEFAULT '',
		location    VARCHAR(255)    NOT NULL,
		description TEXT            NOT NULL,
		price       DECIMAL(10,2)   NOT NULL DEFAULT 0,
		created_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_events_date_time (date, time)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS bookings (
		id              BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		reference       CHAR(36)        NOT NULL,
		user_id         BIGINT UNSIGNED NOT NULL,
		event_type      VARCHAR(100)    NOT NULL,
		event_package   VARCHAR(100)    NOT NULL,
		preferred_dates VARCHAR(255)    NOT NULL DEFAULT '',
		guest_count     INT             NOT NULL DEFAULT 0,
		budget          DECIMAL(10,2)   NOT NULL DEFAULT 0,
		base_price      DECIMAL(10,2)   NOT NULL DEFAULT 0,
		addon_total     DECIMAL(10,2)   NOT NULL DEFAULT 0,
		total_estimated DECIMAL(10,2)   NOT NULL DEFAULT 0,
		vision          TEXT            NOT NULL,
		status          VARCHAR(16)     NOT NULL DEFAULT 'Pending',
		created_at      DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at      DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_bookings_reference (reference),
		KEY idx_bookings_user (user_id),
		KEY idx_bookings_status (status),
		CONSTRAINT fk_bookings_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS refresh_tokens (
		id         BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT UNSIGNED NOT NULL,
		token_hash CHAR(64)        NOT NULL,
		expires_at DATETIME        NOT NULL,
		revoked_at DATETIME        NULL,
		created_at DATETIME        NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_refresh_tokens_hash (token_hash),
		KEY idx_refresh_tokens_user (user_id),
		CONSTRAINT fk_refresh_tokens_user FOREIGN KEY (user_id) REFERENCES users (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// InitSchema creates the tables on first run. Every statement is idempotent
// so restarting against an existing database is safe.
func InitSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
