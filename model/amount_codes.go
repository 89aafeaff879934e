package model

// AmountSubtype names an entry of the BAI2 account status and summary type code list.
type AmountSubtype string

// Amount subtypes. The Custom* subtypes cover the bank-defined ranges 900-919, 920-959 and
// 960-999; AmtUnclassified is every code the list does not define.
const (
	AmtAchNetPosition                                AmountSubtype = "ach_net_position"
	AmtAchSettlementCredits                          AmountSubtype = "ach_settlement_credits"
	AmtAchSettlementDebits                           AmountSubtype = "ach_settlement_debits"
	AmtAdjustedBalance                               AmountSubtype = "adjusted_balance"
	AmtAdjustedBalanceMtd                            AmountSubtype = "adjusted_balance_mtd"
	AmtAdjustedBalanceYtd                            AmountSubtype = "adjusted_balance_ytd"
	AmtAdjustedTotalDisbursement                     AmountSubtype = "adjusted_total_disbursement"
	AmtAdjustmentToBalances                          AmountSubtype = "adjustment_to_balances"
	AmtAggregateBalanceAdjustments                   AmountSubtype = "aggregate_balance_adjustments"
	AmtAvailableCommitmentAmount                     AmountSubtype = "available_commitment_amount"
	AmtAverage1DayFloatMtd                           AmountSubtype = "average_1_day_float_mtd"
	AmtAverage1DayFloatYtd                           AmountSubtype = "average_1_day_float_ytd"
	AmtAverage2DayFloatMtd                           AmountSubtype = "average_2_day_float_mtd"
	AmtAverage2DayFloatYtd                           AmountSubtype = "average_2_day_float_ytd"
	AmtAverageAdjustmentToBalancesMtd                AmountSubtype = "average_adjustment_to_balances_mtd"
	AmtAverageAdjustmentToBalancesYtd                AmountSubtype = "average_adjustment_to_balances_ytd"
	AmtAverageAvailablePreviousMonth                 AmountSubtype = "average_available_previous_month"
	AmtAverageClosingAvailableLastMonth              AmountSubtype = "average_closing_available_last_month"
	AmtAverageClosingAvailableMtd                    AmountSubtype = "average_closing_available_mtd"
	AmtAverageClosingAvailableYtd                    AmountSubtype = "average_closing_available_ytd"
	AmtAverageClosingAvailableYtdLastMonth           AmountSubtype = "average_closing_available_ytd_last_month"
	AmtAverageClosingLedgerMtd                       AmountSubtype = "average_closing_ledger_mtd"
	AmtAverageClosingLedgerPreviousMonth             AmountSubtype = "average_closing_ledger_previous_month"
	AmtAverageClosingLedgerYtd                       AmountSubtype = "average_closing_ledger_ytd"
	AmtAverageClosingLedgerYtdPreviousMonth          AmountSubtype = "average_closing_ledger_ytd_previous_month"
	AmtAverageCurrentAvailableMtd                    AmountSubtype = "average_current_available_mtd"
	AmtAverageCurrentAvailableYtd                    AmountSubtype = "average_current_available_ytd"
	AmtAverageOpeningAvailableMtd                    AmountSubtype = "average_opening_available_mtd"
	AmtAverageOpeningAvailableYtd                    AmountSubtype = "average_opening_available_ytd"
	AmtAverageOpeningLedgerMtd                       AmountSubtype = "average_opening_ledger_mtd"
	AmtAverageOpeningLedgerYtd                       AmountSubtype = "average_opening_ledger_ytd"
	AmtClosingAvailable                              AmountSubtype = "closing_available"
	AmtClosingLedger                                 AmountSubtype = "closing_ledger"
	AmtCorporateTradePaymentCredits                  AmountSubtype = "corporate_trade_payment_credits"
	AmtCorporateTradePaymentDebits                   AmountSubtype = "corporate_trade_payment_debits"
	AmtCorporateTradePaymentSettlement               AmountSubtype = "corporate_trade_payment_settlement"
	AmtCorrespondentBankDeposit                      AmountSubtype = "correspondent_bank_deposit"
	AmtCreditsNotDetailed                            AmountSubtype = "credits_not_detailed"
	AmtCurrentAvailable                              AmountSubtype = "current_available"
	AmtCurrentAvailableCrsSuppressed                 AmountSubtype = "current_available_crs_suppressed"
	AmtCurrentDayTotalLockboxDeposits                AmountSubtype = "current_day_total_lockbox_deposits"
	AmtCurrentLedger                                 AmountSubtype = "current_ledger"
	AmtCustomCreditSummary                           AmountSubtype = "custom_credit_summary"
	AmtCustomDebitSummary                            AmountSubtype = "custom_debit_summary"
	AmtCustomStatus                                  AmountSubtype = "custom_status"
	AmtDebitsNotDetailed                             AmountSubtype = "debits_not_detailed"
	AmtDepositsSubjectToFloat                        AmountSubtype = "deposits_subject_to_float"
	AmtDisbursingFundingRequirement                  AmountSubtype = "disbursing_funding_requirement"
	AmtDisbursingOpeningAvailableBalance             AmountSubtype = "disbursing_opening_available_balance"
	AmtEdiTransactionCredit                          AmountSubtype = "edi_transaction_credit"
	AmtEdiTransactionDebits                          AmountSubtype = "edi_transaction_debits"
	AmtEstimatedTotalDisbursement                    AmountSubtype = "estimated_total_disbursement"
	AmtFiveDayFloat                                  AmountSubtype = "five_day_float"
	AmtFloatAdjustment                               AmountSubtype = "float_adjustment"
	AmtFourDayFloat                                  AmountSubtype = "four_day_float"
	AmtFrbFreightPaymentDebits                       AmountSubtype = "frb_freight_payment_debits"
	AmtFrbPresentmentEstimate                        AmountSubtype = "frb_presentment_estimate"
	AmtGrandTotalCreditsLessGrandTotalDebits         AmountSubtype = "grand_total_credits_less_grand_total_debits"
	AmtInterceptDebits                               AmountSubtype = "intercept_debits"
	AmtInterestAmountPastDue                         AmountSubtype = "interest_amount_past_due"
	AmtInvestmentInterest                            AmountSubtype = "investment_interest"
	AmtInvestmentSold                                AmountSubtype = "investment_sold"
	AmtInvestmentsPurchased                          AmountSubtype = "investments_purchased"
	AmtLateDebitsAfterNotification                   AmountSubtype = "late_debits_after_notification"
	AmtLateDeposit                                   AmountSubtype = "late_deposit"
	AmtListPostCredits                               AmountSubtype = "list_post_credits"
	AmtListPostDebits                                AmountSubtype = "list_post_debits"
	AmtLoanBalance                                   AmountSubtype = "loan_balance"
	AmtLoanDisbursement                              AmountSubtype = "loan_disbursement"
	AmtMonthlyDividends                              AmountSubtype = "monthly_dividends"
	AmtNetZeroBalanceAmount                          AmountSubtype = "net_zero_balance_amount"
	AmtOneDayFloat                                   AmountSubtype = "one_day_float"
	AmtOpeningAvailable                              AmountSubtype = "opening_available"
	AmtOpeningAvailableAndTotalSameDayAchDtcDeposit  AmountSubtype = "opening_available_and_total_same_day_ach_dtc_deposit"
	AmtOpeningLedger                                 AmountSubtype = "opening_ledger"
	AmtPaymentAmountDue                              AmountSubtype = "payment_amount_due"
	AmtPrincipalAmountPastDue                        AmountSubtype = "principal_amount_past_due"
	AmtPrincipalLoanBalance                          AmountSubtype = "principal_loan_balance"
	AmtSixDayFloat                                   AmountSubtype = "six_day_float"
	AmtTargetBalance                                 AmountSubtype = "target_balance"
	AmtThreeOrMoreDaysFloat                          AmountSubtype = "three_or_more_days_float"
	AmtTodaysTotalDebits                             AmountSubtype = "todays_total_debits"
	AmtTotalAchCredits                               AmountSubtype = "total_ach_credits"
	AmtTotalAchDebits                                AmountSubtype = "total_ach_debits"
	AmtTotalAchDisbursementFundingDebits             AmountSubtype = "total_ach_disbursement_funding_debits"
	AmtTotalAchDisbursingFundingCredits              AmountSubtype = "total_ach_disbursing_funding_credits"
	AmtTotalAchReturnItems                           AmountSubtype = "total_ach_return_items"
	AmtTotalAdjustmentCreditsYtd                     AmountSubtype = "total_adjustment_credits_ytd"
	AmtTotalAmountOfSecuritiesPurchased              AmountSubtype = "total_amount_of_securities_purchased"
	AmtTotalAprDebits                                AmountSubtype = "total_apr_debits"
	AmtTotalAtmCredits                               AmountSubtype = "total_atm_credits"
	AmtTotalAtmDebits                                AmountSubtype = "total_atm_debits"
	AmtTotalAutomaticTransferCredits                 AmountSubtype = "total_automatic_transfer_credits"
	AmtTotalAutomaticTransferDebits                  AmountSubtype = "total_automatic_transfer_debits"
	AmtTotalBackValueCredits                         AmountSubtype = "total_back_value_credits"
	AmtTotalBackValueDebits                          AmountSubtype = "total_back_value_debits"
	AmtTotalBankCardDeposits                         AmountSubtype = "total_bank_card_deposits"
	AmtTotalBankOriginatedDebits                     AmountSubtype = "total_bank_originated_debits"
	AmtTotalBankPreparedDeposits                     AmountSubtype = "total_bank_prepared_deposits"
	AmtTotalBankersAcceptanceCredits                 AmountSubtype = "total_bankers_acceptance_credits"
	AmtTotalBankersAcceptancesDebit                  AmountSubtype = "total_bankers_acceptances_debit"
	AmtTotalBookTransferCredits                      AmountSubtype = "total_book_transfer_credits"
	AmtTotalBookTransferDebits                       AmountSubtype = "total_book_transfer_debits"
	AmtTotalBrokerDebits                             AmountSubtype = "total_broker_debits"
	AmtTotalBrokerDebitsChf                          AmountSubtype = "total_broker_debits_chf"
	AmtTotalBrokerDebitsFf                           AmountSubtype = "total_broker_debits_ff"
	AmtTotalBrokerDeposits                           AmountSubtype = "total_broker_deposits"
	AmtTotalBrokerDepositsChf                        AmountSubtype = "total_broker_deposits_chf"
	AmtTotalBrokerDepositsFf                         AmountSubtype = "total_broker_deposits_ff"
	AmtTotalCashCenterCredits                        AmountSubtype = "total_cash_center_credits"
	AmtTotalCashCenterDebits                         AmountSubtype = "total_cash_center_debits"
	AmtTotalCashLetterAdjustments                    AmountSubtype = "total_cash_letter_adjustments"
	AmtTotalCashLetterCredits                        AmountSubtype = "total_cash_letter_credits"
	AmtTotalCashLetterDebits                         AmountSubtype = "total_cash_letter_debits"
	AmtTotalCheckPaid                                AmountSubtype = "total_check_paid"
	AmtTotalCheckPaidCumulativeMtd                   AmountSubtype = "total_check_paid_cumulative_mtd"
	AmtTotalChecksPostedAndReturned                  AmountSubtype = "total_checks_posted_and_returned"
	AmtTotalCollectionCredits                        AmountSubtype = "total_collection_credits"
	AmtTotalCollectionDebit                          AmountSubtype = "total_collection_debit"
	AmtTotalCommercialDeposits                       AmountSubtype = "total_commercial_deposits"
	AmtTotalConcentrationCredits                     AmountSubtype = "total_concentration_credits"
	AmtTotalControlledDisbursingCredits              AmountSubtype = "total_controlled_disbursing_credits"
	AmtTotalControlledDisbursingDebits               AmountSubtype = "total_controlled_disbursing_debits"
	AmtTotalCreditAdjustment                         AmountSubtype = "total_credit_adjustment"
	AmtTotalCreditAmountMtd                          AmountSubtype = "total_credit_amount_mtd"
	AmtTotalCreditReversals                          AmountSubtype = "total_credit_reversals"
	AmtTotalCredits                                  AmountSubtype = "total_credits"
	AmtTotalCreditsLessWireTransferAndReturnedChecks AmountSubtype = "total_credits_less_wire_transfer_and_returned_checks"
	AmtTotalDebitAdjustments                         AmountSubtype = "total_debit_adjustments"
	AmtTotalDebitAmountMtd                           AmountSubtype = "total_debit_amount_mtd"
	AmtTotalDebitLessWireTransfersAndChargeBacks     AmountSubtype = "total_debit_less_wire_transfers_and_charge_backs"
	AmtTotalDebitReversals                           AmountSubtype = "total_debit_reversals"
	AmtTotalDebits                                   AmountSubtype = "total_debits"
	AmtTotalDebitsExcludingReturnedItems             AmountSubtype = "total_debits_excluding_returned_items"
	AmtTotalDepositedItemsReturned                   AmountSubtype = "total_deposited_items_returned"
	AmtTotalDisbursingChecksPaidEarlyAmount          AmountSubtype = "total_disbursing_checks_paid_early_amount"
	AmtTotalDisbursingChecksPaidLastAmount           AmountSubtype = "total_disbursing_checks_paid_last_amount"
	AmtTotalDisbursingChecksPaidLaterAmount          AmountSubtype = "total_disbursing_checks_paid_later_amount"
	AmtTotalDtcCredits                               AmountSubtype = "total_dtc_credits"
	AmtTotalDtcDebits                                AmountSubtype = "total_dtc_debits"
	AmtTotalDtcDisbursingCredits                     AmountSubtype = "total_dtc_disbursing_credits"
	AmtTotalEscrowCredits                            AmountSubtype = "total_escrow_credits"
	AmtTotalEscrowDebits                             AmountSubtype = "total_escrow_debits"
	AmtTotalFedFundsPurchased                        AmountSubtype = "total_fed_funds_purchased"
	AmtTotalFedFundsSold                             AmountSubtype = "total_fed_funds_sold"
	AmtTotalFederalReserveBankCommercialBankDebit    AmountSubtype = "total_federal_reserve_bank_commercial_bank_debit"
	AmtTotalFloat                                    AmountSubtype = "total_float"
	AmtTotalForeignCheckPurchased                    AmountSubtype = "total_foreign_check_purchased"
	AmtTotalFreightPaymentCredits                    AmountSubtype = "total_freight_payment_credits"
	AmtTotalFundsRequired                            AmountSubtype = "total_funds_required"
	AmtTotalIncomingMoneyTransfers                   AmountSubtype = "total_incoming_money_transfers"
	AmtTotalInternationalCredits                     AmountSubtype = "total_international_credits"
	AmtTotalInternationalCreditsChf                  AmountSubtype = "total_international_credits_chf"
	AmtTotalInternationalCreditsFf                   AmountSubtype = "total_international_credits_ff"
	AmtTotalInternationalDebitChf                    AmountSubtype = "total_international_debit_chf"
	AmtTotalInternationalDebitFf                     AmountSubtype = "total_international_debit_ff"
	AmtTotalInternationalDebits                      AmountSubtype = "total_international_debits"
	AmtTotalInternationalMoneyTransferCredits        AmountSubtype = "total_international_money_transfer_credits"
	AmtTotalInternationalMoneyTransferDebits         AmountSubtype = "total_international_money_transfer_debits"
	AmtTotalInvestmentInterestDebits                 AmountSubtype = "total_investment_interest_debits"
	AmtTotalInvestmentPosition                       AmountSubtype = "total_investment_position"
	AmtTotalLettersOfCredit                          AmountSubtype = "total_letters_of_credit"
	AmtTotalLoanPayment                              AmountSubtype = "total_loan_payment"
	AmtTotalLoanPayments                             AmountSubtype = "total_loan_payments"
	AmtTotalLoanProceeds                             AmountSubtype = "total_loan_proceeds"
	AmtTotalLockboxDebits                            AmountSubtype = "total_lockbox_debits"
	AmtTotalLockboxDeposits                          AmountSubtype = "total_lockbox_deposits"
	AmtTotalMiscellaneousCredits                     AmountSubtype = "total_miscellaneous_credits"
	AmtTotalMiscellaneousDebits                      AmountSubtype = "total_miscellaneous_debits"
	AmtTotalMiscellaneousDeposits                    AmountSubtype = "total_miscellaneous_deposits"
	AmtTotalMiscellaneousSecuritiesCreditsChf        AmountSubtype = "total_miscellaneous_securities_credits_chf"
	AmtTotalMiscellaneousSecuritiesCreditsFf         AmountSubtype = "total_miscellaneous_securities_credits_ff"
	AmtTotalMiscellaneousSecuritiesDbFf              AmountSubtype = "total_miscellaneous_securities_db_ff"
	AmtTotalMiscellaneousSecuritiesDebitChf          AmountSubtype = "total_miscellaneous_securities_debit_chf"
	AmtTotalOtherCheckDeposits                       AmountSubtype = "total_other_check_deposits"
	AmtTotalOutgoingMoneyTransfers                   AmountSubtype = "total_outgoing_money_transfers"
	AmtTotalPayableThroughDrafts                     AmountSubtype = "total_payable_through_drafts"
	AmtTotalPreauthorizedPaymentCredits              AmountSubtype = "total_preauthorized_payment_credits"
	AmtTotalRejectedCredits                          AmountSubtype = "total_rejected_credits"
	AmtTotalRejectedDebits                           AmountSubtype = "total_rejected_debits"
	AmtTotalSecuritiesInterest                       AmountSubtype = "total_securities_interest"
	AmtTotalSecuritiesInterestChf                    AmountSubtype = "total_securities_interest_chf"
	AmtTotalSecuritiesInterestFf                     AmountSubtype = "total_securities_interest_ff"
	AmtTotalSecuritiesMatured                        AmountSubtype = "total_securities_matured"
	AmtTotalSecuritiesMaturedChf                     AmountSubtype = "total_securities_matured_chf"
	AmtTotalSecuritiesMaturedFf                      AmountSubtype = "total_securities_matured_ff"
	AmtTotalSecuritiesPurchasedChf                   AmountSubtype = "total_securities_purchased_chf"
	AmtTotalSecuritiesPurchasedFf                    AmountSubtype = "total_securities_purchased_ff"
	AmtTotalSecuritiesSold                           AmountSubtype = "total_securities_sold"
	AmtTotalSecuritiesSoldChf                        AmountSubtype = "total_securities_sold_chf"
	AmtTotalSecuritiesSoldFf                         AmountSubtype = "total_securities_sold_ff"
	AmtTotalSecurityCredits                          AmountSubtype = "total_security_credits"
	AmtTotalSecurityDebits                           AmountSubtype = "total_security_debits"
	AmtTotalTrustCredits                             AmountSubtype = "total_trust_credits"
	AmtTotalTrustDebits                              AmountSubtype = "total_trust_debits"
	AmtTotalUniversalCredits                         AmountSubtype = "total_universal_credits"
	AmtTotalUniversalDebits                          AmountSubtype = "total_universal_debits"
	AmtTotalValueDatedFunds                          AmountSubtype = "total_value_dated_funds"
	AmtTotalWireTransfersInChf                       AmountSubtype = "total_wire_transfers_in_chf"
	AmtTotalWireTransfersInFf                        AmountSubtype = "total_wire_transfers_in_ff"
	AmtTotalWireTransfersOutChf                      AmountSubtype = "total_wire_transfers_out_chf"
	AmtTotalWireTransfersOutFf                       AmountSubtype = "total_wire_transfers_out_ff"
	AmtTotalYtdAdjustment                            AmountSubtype = "total_ytd_adjustment"
	AmtTotalZbaCredits                               AmountSubtype = "total_zba_credits"
	AmtTotalZbaDebits                                AmountSubtype = "total_zba_debits"
	AmtTransferCalculation                           AmountSubtype = "transfer_calculation"
	AmtTransferCalculationDebit                      AmountSubtype = "transfer_calculation_debit"
	AmtTwoOrMoreDaysFloat                            AmountSubtype = "two_or_more_days_float"
	AmtZeroDayFloat                                  AmountSubtype = "zero_day_float"
	AmtUnclassified                                  AmountSubtype = "unclassified"
)

var amountTypes = map[string]amountEntry{
	"010": {AmountStatus, AmtOpeningLedger},
	"011": {AmountStatus, AmtAverageOpeningLedgerMtd},
	"012": {AmountStatus, AmtAverageOpeningLedgerYtd},
	"015": {AmountStatus, AmtClosingLedger},
	"020": {AmountStatus, AmtAverageClosingLedgerMtd},
	"021": {AmountStatus, AmtAverageClosingLedgerPreviousMonth},
	"022": {AmountStatus, AmtAggregateBalanceAdjustments},
	"024": {AmountStatus, AmtAverageClosingLedgerYtdPreviousMonth},
	"025": {AmountStatus, AmtAverageClosingLedgerYtd},
	"030": {AmountStatus, AmtCurrentLedger},
	"037": {AmountStatus, AmtAchNetPosition},
	"039": {AmountStatus, AmtOpeningAvailableAndTotalSameDayAchDtcDeposit},
	"040": {AmountStatus, AmtOpeningAvailable},
	"041": {AmountStatus, AmtAverageOpeningAvailableMtd},
	"042": {AmountStatus, AmtAverageOpeningAvailableYtd},
	"043": {AmountStatus, AmtAverageAvailablePreviousMonth},
	"044": {AmountStatus, AmtDisbursingOpeningAvailableBalance},
	"045": {AmountStatus, AmtClosingAvailable},
	"050": {AmountStatus, AmtAverageClosingAvailableMtd},
	"051": {AmountStatus, AmtAverageClosingAvailableLastMonth},
	"054": {AmountStatus, AmtAverageClosingAvailableYtdLastMonth},
	"055": {AmountStatus, AmtAverageClosingAvailableYtd},
	"056": {AmountStatus, AmtLoanBalance},
	"057": {AmountStatus, AmtTotalInvestmentPosition},
	"059": {AmountStatus, AmtCurrentAvailableCrsSuppressed},
	"060": {AmountStatus, AmtCurrentAvailable},
	"061": {AmountStatus, AmtAverageCurrentAvailableMtd},
	"062": {AmountStatus, AmtAverageCurrentAvailableYtd},
	"063": {AmountStatus, AmtTotalFloat},
	"065": {AmountStatus, AmtTargetBalance},
	"066": {AmountStatus, AmtAdjustedBalance},
	"067": {AmountStatus, AmtAdjustedBalanceMtd},
	"068": {AmountStatus, AmtAdjustedBalanceYtd},
	"070": {AmountStatus, AmtZeroDayFloat},
	"072": {AmountStatus, AmtOneDayFloat},
	"073": {AmountStatus, AmtFloatAdjustment},
	"074": {AmountStatus, AmtTwoOrMoreDaysFloat},
	"075": {AmountStatus, AmtThreeOrMoreDaysFloat},
	"076": {AmountStatus, AmtAdjustmentToBalances},
	"077": {AmountStatus, AmtAverageAdjustmentToBalancesMtd},
	"078": {AmountStatus, AmtAverageAdjustmentToBalancesYtd},
	"079": {AmountStatus, AmtFourDayFloat},
	"080": {AmountStatus, AmtFiveDayFloat},
	"081": {AmountStatus, AmtSixDayFloat},
	"082": {AmountStatus, AmtAverage1DayFloatMtd},
	"083": {AmountStatus, AmtAverage1DayFloatYtd},
	"084": {AmountStatus, AmtAverage2DayFloatMtd},
	"085": {AmountStatus, AmtAverage2DayFloatYtd},
	"086": {AmountStatus, AmtTransferCalculation},
	"100": {AmountCreditSummary, AmtTotalCredits},
	"101": {AmountCreditSummary, AmtTotalCreditAmountMtd},
	"105": {AmountCreditSummary, AmtCreditsNotDetailed},
	"106": {AmountCreditSummary, AmtDepositsSubjectToFloat},
	"107": {AmountCreditSummary, AmtTotalAdjustmentCreditsYtd},
	"109": {AmountCreditSummary, AmtCurrentDayTotalLockboxDeposits},
	"110": {AmountCreditSummary, AmtTotalLockboxDeposits},
	"120": {AmountCreditSummary, AmtEdiTransactionCredit},
	"130": {AmountCreditSummary, AmtTotalConcentrationCredits},
	"131": {AmountCreditSummary, AmtTotalDtcCredits},
	"140": {AmountCreditSummary, AmtTotalAchCredits},
	"146": {AmountCreditSummary, AmtTotalBankCardDeposits},
	"150": {AmountCreditSummary, AmtTotalPreauthorizedPaymentCredits},
	"160": {AmountCreditSummary, AmtTotalAchDisbursingFundingCredits},
	"162": {AmountCreditSummary, AmtCorporateTradePaymentSettlement},
	"163": {AmountCreditSummary, AmtCorporateTradePaymentCredits},
	"167": {AmountCreditSummary, AmtAchSettlementCredits},
	"170": {AmountCreditSummary, AmtTotalOtherCheckDeposits},
	"178": {AmountCreditSummary, AmtListPostCredits},
	"180": {AmountCreditSummary, AmtTotalLoanProceeds},
	"182": {AmountCreditSummary, AmtTotalBankPreparedDeposits},
	"185": {AmountCreditSummary, AmtTotalMiscellaneousDeposits},
	"186": {AmountCreditSummary, AmtTotalCashLetterCredits},
	"188": {AmountCreditSummary, AmtTotalCashLetterAdjustments},
	"190": {AmountCreditSummary, AmtTotalIncomingMoneyTransfers},
	"200": {AmountCreditSummary, AmtTotalAutomaticTransferCredits},
	"205": {AmountCreditSummary, AmtTotalBookTransferCredits},
	"207": {AmountCreditSummary, AmtTotalInternationalMoneyTransferCredits},
	"210": {AmountCreditSummary, AmtTotalInternationalCredits},
	"215": {AmountCreditSummary, AmtTotalLettersOfCredit},
	"230": {AmountCreditSummary, AmtTotalSecurityCredits},
	"231": {AmountCreditSummary, AmtTotalCollectionCredits},
	"239": {AmountCreditSummary, AmtTotalBankersAcceptanceCredits},
	"245": {AmountCreditSummary, AmtMonthlyDividends},
	"250": {AmountCreditSummary, AmtTotalChecksPostedAndReturned},
	"251": {AmountCreditSummary, AmtTotalDebitReversals},
	"256": {AmountCreditSummary, AmtTotalAchReturnItems},
	"260": {AmountCreditSummary, AmtTotalRejectedCredits},
	"270": {AmountCreditSummary, AmtTotalZbaCredits},
	"271": {AmountCreditSummary, AmtNetZeroBalanceAmount},
	"280": {AmountCreditSummary, AmtTotalControlledDisbursingCredits},
	"285": {AmountCreditSummary, AmtTotalDtcDisbursingCredits},
	"294": {AmountCreditSummary, AmtTotalAtmCredits},
	"302": {AmountCreditSummary, AmtCorrespondentBankDeposit},
	"303": {AmountCreditSummary, AmtTotalWireTransfersInFf},
	"304": {AmountCreditSummary, AmtTotalWireTransfersInChf},
	"305": {AmountCreditSummary, AmtTotalFedFundsSold},
	"307": {AmountCreditSummary, AmtTotalTrustCredits},
	"309": {AmountCreditSummary, AmtTotalValueDatedFunds},
	"310": {AmountCreditSummary, AmtTotalCommercialDeposits},
	"315": {AmountCreditSummary, AmtTotalInternationalCreditsFf},
	"316": {AmountCreditSummary, AmtTotalInternationalCreditsChf},
	"318": {AmountCreditSummary, AmtTotalForeignCheckPurchased},
	"319": {AmountCreditSummary, AmtLateDeposit},
	"320": {AmountCreditSummary, AmtTotalSecuritiesSoldFf},
	"321": {AmountCreditSummary, AmtTotalSecuritiesSoldChf},
	"324": {AmountCreditSummary, AmtTotalSecuritiesMaturedFf},
	"325": {AmountCreditSummary, AmtTotalSecuritiesMaturedChf},
	"326": {AmountCreditSummary, AmtTotalSecuritiesInterest},
	"327": {AmountCreditSummary, AmtTotalSecuritiesMatured},
	"328": {AmountCreditSummary, AmtTotalSecuritiesInterestFf},
	"329": {AmountCreditSummary, AmtTotalSecuritiesInterestChf},
	"330": {AmountCreditSummary, AmtTotalEscrowCredits},
	"332": {AmountCreditSummary, AmtTotalMiscellaneousSecuritiesCreditsFf},
	"336": {AmountCreditSummary, AmtTotalMiscellaneousSecuritiesCreditsChf},
	"338": {AmountCreditSummary, AmtTotalSecuritiesSold},
	"340": {AmountCreditSummary, AmtTotalBrokerDeposits},
	"341": {AmountCreditSummary, AmtTotalBrokerDepositsFf},
	"343": {AmountCreditSummary, AmtTotalBrokerDepositsChf},
	"350": {AmountCreditSummary, AmtInvestmentSold},
	"352": {AmountCreditSummary, AmtTotalCashCenterCredits},
	"355": {AmountCreditSummary, AmtInvestmentInterest},
	"356": {AmountCreditSummary, AmtTotalCreditAdjustment},
	"360": {AmountCreditSummary, AmtTotalCreditsLessWireTransferAndReturnedChecks},
	"361": {AmountCreditSummary, AmtGrandTotalCreditsLessGrandTotalDebits},
	"370": {AmountCreditSummary, AmtTotalBackValueCredits},
	"385": {AmountCreditSummary, AmtTotalUniversalCredits},
	"389": {AmountCreditSummary, AmtTotalFreightPaymentCredits},
	"390": {AmountCreditSummary, AmtTotalMiscellaneousCredits},
	"400": {AmountDebitSummary, AmtTotalDebits},
	"401": {AmountDebitSummary, AmtTotalDebitAmountMtd},
	"403": {AmountDebitSummary, AmtTodaysTotalDebits},
	"405": {AmountDebitSummary, AmtTotalDebitLessWireTransfersAndChargeBacks},
	"406": {AmountDebitSummary, AmtDebitsNotDetailed},
	"410": {AmountDebitSummary, AmtTotalYtdAdjustment},
	"412": {AmountDebitSummary, AmtTotalDebitsExcludingReturnedItems},
	"416": {AmountDebitSummary, AmtTotalLockboxDebits},
	"420": {AmountDebitSummary, AmtEdiTransactionDebits},
	"430": {AmountDebitSummary, AmtTotalPayableThroughDrafts},
	"446": {AmountDebitSummary, AmtTotalAchDisbursementFundingDebits},
	"450": {AmountDebitSummary, AmtTotalAchDebits},
	"463": {AmountDebitSummary, AmtCorporateTradePaymentDebits},
	"465": {AmountDebitSummary, AmtCorporateTradePaymentSettlement},
	"467": {AmountDebitSummary, AmtAchSettlementDebits},
	"470": {AmountDebitSummary, AmtTotalCheckPaid},
	"471": {AmountDebitSummary, AmtTotalCheckPaidCumulativeMtd},
	"478": {AmountDebitSummary, AmtListPostDebits},
	"480": {AmountDebitSummary, AmtTotalLoanPayments},
	"482": {AmountDebitSummary, AmtTotalBankOriginatedDebits},
	"486": {AmountDebitSummary, AmtTotalCashLetterDebits},
	"490": {AmountDebitSummary, AmtTotalOutgoingMoneyTransfers},
	"500": {AmountDebitSummary, AmtTotalAutomaticTransferDebits},
	"505": {AmountDebitSummary, AmtTotalBookTransferDebits},
	"507": {AmountDebitSummary, AmtTotalInternationalMoneyTransferDebits},
	"510": {AmountDebitSummary, AmtTotalInternationalDebits},
	"515": {AmountDebitSummary, AmtTotalLettersOfCredit},
	"530": {AmountDebitSummary, AmtTotalSecurityDebits},
	"532": {AmountDebitSummary, AmtTotalAmountOfSecuritiesPurchased},
	"534": {AmountDebitSummary, AmtTotalMiscellaneousSecuritiesDbFf},
	"536": {AmountDebitSummary, AmtTotalMiscellaneousSecuritiesDebitChf},
	"537": {AmountDebitSummary, AmtTotalCollectionDebit},
	"539": {AmountDebitSummary, AmtTotalBankersAcceptancesDebit},
	"550": {AmountDebitSummary, AmtTotalDepositedItemsReturned},
	"551": {AmountDebitSummary, AmtTotalCreditReversals},
	"556": {AmountDebitSummary, AmtTotalAchReturnItems},
	"560": {AmountDebitSummary, AmtTotalRejectedDebits},
	"570": {AmountDebitSummary, AmtTotalZbaDebits},
	"580": {AmountDebitSummary, AmtTotalControlledDisbursingDebits},
	"583": {AmountDebitSummary, AmtTotalDisbursingChecksPaidEarlyAmount},
	"584": {AmountDebitSummary, AmtTotalDisbursingChecksPaidLaterAmount},
	"585": {AmountDebitSummary, AmtDisbursingFundingRequirement},
	"586": {AmountDebitSummary, AmtFrbPresentmentEstimate},
	"587": {AmountDebitSummary, AmtLateDebitsAfterNotification},
	"588": {AmountDebitSummary, AmtTotalDisbursingChecksPaidLastAmount},
	"590": {AmountDebitSummary, AmtTotalDtcDebits},
	"594": {AmountDebitSummary, AmtTotalAtmDebits},
	"596": {AmountDebitSummary, AmtTotalAprDebits},
	"601": {AmountDebitSummary, AmtEstimatedTotalDisbursement},
	"602": {AmountDebitSummary, AmtAdjustedTotalDisbursement},
	"610": {AmountDebitSummary, AmtTotalFundsRequired},
	"611": {AmountDebitSummary, AmtTotalWireTransfersOutChf},
	"612": {AmountDebitSummary, AmtTotalWireTransfersOutFf},
	"613": {AmountDebitSummary, AmtTotalInternationalDebitChf},
	"614": {AmountDebitSummary, AmtTotalInternationalDebitFf},
	"615": {AmountDebitSummary, AmtTotalFederalReserveBankCommercialBankDebit},
	"617": {AmountDebitSummary, AmtTotalSecuritiesPurchasedChf},
	"618": {AmountDebitSummary, AmtTotalSecuritiesPurchasedFf},
	"621": {AmountDebitSummary, AmtTotalBrokerDebitsChf},
	"623": {AmountDebitSummary, AmtTotalBrokerDebitsFf},
	"625": {AmountDebitSummary, AmtTotalBrokerDebits},
	"626": {AmountDebitSummary, AmtTotalFedFundsPurchased},
	"628": {AmountDebitSummary, AmtTotalCashCenterDebits},
	"630": {AmountDebitSummary, AmtTotalDebitAdjustments},
	"632": {AmountDebitSummary, AmtTotalTrustDebits},
	"640": {AmountDebitSummary, AmtTotalEscrowDebits},
	"646": {AmountDebitSummary, AmtTransferCalculationDebit},
	"650": {AmountDebitSummary, AmtInvestmentsPurchased},
	"655": {AmountDebitSummary, AmtTotalInvestmentInterestDebits},
	"665": {AmountDebitSummary, AmtInterceptDebits},
	"670": {AmountDebitSummary, AmtTotalBackValueDebits},
	"685": {AmountDebitSummary, AmtTotalUniversalDebits},
	"689": {AmountDebitSummary, AmtFrbFreightPaymentDebits},
	"690": {AmountDebitSummary, AmtTotalMiscellaneousDebits},
	"701": {AmountStatus, AmtPrincipalLoanBalance},
	"703": {AmountStatus, AmtAvailableCommitmentAmount},
	"705": {AmountStatus, AmtPaymentAmountDue},
	"707": {AmountStatus, AmtPrincipalAmountPastDue},
	"709": {AmountStatus, AmtInterestAmountPastDue},
	"720": {AmountCreditSummary, AmtTotalLoanPayment},
	"760": {AmountDebitSummary, AmtLoanDisbursement},
}
