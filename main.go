////////////////////////////////////////////////////////////////////////////////
// SimpleArtistToken: local debug runner
//
// Deploys (or re-attaches to) the contract against a persistent SQLite
// state store, performs a purchase and prints the resulting token, so
// state and events can be inspected without a chain.
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"os"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/blockrockettech/artblocks-v3/contract"
	"github.com/blockrockettech/artblocks-v3/sdk"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	statePath := envOr("SATOKEN_STATE", "satoken-state.db")
	baseURI := envOr("SATOKEN_BASE_URI", "https://artblocks.com/")
	artistAddr := sdk.Address(envOr("SATOKEN_ARTIST", "hive:artist"))
	creatorAddr := sdk.Address(envOr("SATOKEN_CREATOR", "hive:creator"))
	collectorAddr := sdk.Address(envOr("SATOKEN_COLLECTOR", "hive:collector"))

	price, err := uint256.FromDecimal(envOr("SATOKEN_PRICE_WEI", "100"))
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid SATOKEN_PRICE_WEI")
	}
	platformPct, err := strconv.ParseUint(envOr("SATOKEN_PLATFORM_PCT", "5"), 10, 64)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid SATOKEN_PLATFORM_PCT")
	}

	store, err := contract.NewSQLiteState(statePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("open state store")
	}
	defer store.Close()

	host := sdk.NewMockHost("satoken-local")
	host.SetLogger(logger)
	host.SetCaller(creatorAddr)

	bank := sdk.NewMockBank(sdk.Address("contract:satoken"))
	bank.Deposit(collectorAddr, uint256.NewInt(1_000_000))

	tok, err := contract.Attach(host, bank, store)
	if err != nil {
		tok, err = contract.New(host, bank, store, artistAddr, price, baseURI, platformPct)
		if err != nil {
			logger.Fatal().Err(err).Msg("deploy")
		}
		logger.Info().
			Str("artist", artistAddr.String()).
			Str("price", price.Dec()).
			Uint64("platformPct", platformPct).
			Msg("deployed SimpleArtistToken")
	} else {
		logger.Info().Uint64("invocations", tok.Invocations()).Msg("attached to existing state")
	}

	host.SetCaller(collectorAddr)
	tokenID, err := tok.PurchaseTo(collectorAddr, price)
	if err != nil {
		logger.Fatal().Err(err).Msg("purchase")
	}

	hash, err := tok.TokenIDToHash(tokenID)
	if err != nil {
		logger.Fatal().Err(err).Msg("token hash")
	}
	uri, err := tok.TokenURI(tokenID)
	if err != nil {
		logger.Fatal().Err(err).Msg("token uri")
	}

	logger.Info().
		Uint64("tokenId", tokenID).
		Str("hash", hash).
		Str("uri", uri).
		Str("artistBalance", bank.BalanceOf(tok.ArtistAddress()).Dec()).
		Str("platformBalance", bank.BalanceOf(tok.PlatformAddress()).Dec()).
		Uint64("invocations", tok.Invocations()).
		Msg("purchase complete")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
