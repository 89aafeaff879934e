package model

// TransactionCategory names an entry of the BAI2 transaction detail type code list.
type TransactionCategory string

// Transaction categories. TxnCustom covers the bank-defined ranges 920-959 (credits) and
// 960-999 (debits); TxnUnclassified is every code the list does not define.
const (
	TxnAccountAnalysisFee                         TransactionCategory = "account_analysis_fee"
	TxnAccountHolderInitiatedAchDebit             TransactionCategory = "account_holder_initiated_ach_debit"
	TxnAchConcentrationCredit                     TransactionCategory = "ach_concentration_credit"
	TxnAchConcentrationDebit                      TransactionCategory = "ach_concentration_debit"
	TxnAchCreditReceived                          TransactionCategory = "ach_credit_received"
	TxnAchDebitReceived                           TransactionCategory = "ach_debit_received"
	TxnAchDisbursementFundingDebit                TransactionCategory = "ach_disbursement_funding_debit"
	TxnAchReturnItemOrAdjustmentSettlement        TransactionCategory = "ach_return_item_or_adjustment_settlement"
	TxnAchReversalCredit                          TransactionCategory = "ach_reversal_credit"
	TxnAchReversalDebit                           TransactionCategory = "ach_reversal_debit"
	TxnAchSettlement                              TransactionCategory = "ach_settlement"
	TxnAmountAppliedToBuydown                     TransactionCategory = "amount_applied_to_buydown"
	TxnAmountAppliedToDeferredInterestDetail      TransactionCategory = "amount_applied_to_deferred_interest_detail"
	TxnAmountAppliedToEscrow                      TransactionCategory = "amount_applied_to_escrow"
	TxnAmountAppliedToInterest                    TransactionCategory = "amount_applied_to_interest"
	TxnAmountAppliedToLateCharges                 TransactionCategory = "amount_applied_to_late_charges"
	TxnAmountAppliedToMiscFees                    TransactionCategory = "amount_applied_to_misc_fees"
	TxnAmountAppliedToPrincipal                   TransactionCategory = "amount_applied_to_principal"
	TxnAmountAppliedToServiceCharge               TransactionCategory = "amount_applied_to_service_charge"
	TxnArpDebit                                   TransactionCategory = "arp_debit"
	TxnAtmCredit                                  TransactionCategory = "atm_credit"
	TxnAtmDebit                                   TransactionCategory = "atm_debit"
	TxnBackValueAdjustment                        TransactionCategory = "back_value_adjustment"
	TxnBankOriginatedDebit                        TransactionCategory = "bank_originated_debit"
	TxnBankPreparedDeposit                        TransactionCategory = "bank_prepared_deposit"
	TxnBankersAcceptances                         TransactionCategory = "bankers_acceptances"
	TxnBondOperationsCredit                       TransactionCategory = "bond_operations_credit"
	TxnBondOperationsDebit                        TransactionCategory = "bond_operations_debit"
	TxnBookTransferCredit                         TransactionCategory = "book_transfer_credit"
	TxnBookTransferDebit                          TransactionCategory = "book_transfer_debit"
	TxnBrokerDebit                                TransactionCategory = "broker_debit"
	TxnBrokerDeposit                              TransactionCategory = "broker_deposit"
	TxnCapitalChange                              TransactionCategory = "capital_change"
	TxnCashCenterCredit                           TransactionCategory = "cash_center_credit"
	TxnCashCenterDebit                            TransactionCategory = "cash_center_debit"
	TxnCashLetterAdjustment                       TransactionCategory = "cash_letter_adjustment"
	TxnCashLetterCredit                           TransactionCategory = "cash_letter_credit"
	TxnCashLetterDebit                            TransactionCategory = "cash_letter_debit"
	TxnCertifiedCheckDebit                        TransactionCategory = "certified_check_debit"
	TxnCheckDepositPackage                        TransactionCategory = "check_deposit_package"
	TxnCheckPaid                                  TransactionCategory = "check_paid"
	TxnCheckPostedAndReturned                     TransactionCategory = "check_posted_and_returned"
	TxnCheckReversal                              TransactionCategory = "check_reversal"
	TxnClearingSettlementCredit                   TransactionCategory = "clearing_settlement_credit"
	TxnClearingSettlementDebit                    TransactionCategory = "clearing_settlement_debit"
	TxnCollectionOfDividends                      TransactionCategory = "collection_of_dividends"
	TxnCollectionOfInterestIncome                 TransactionCategory = "collection_of_interest_income"
	TxnCommercialDeposit                          TransactionCategory = "commercial_deposit"
	TxnCommercialPaper                            TransactionCategory = "commercial_paper"
	TxnCommission                                 TransactionCategory = "commission"
	TxnCompensation                               TransactionCategory = "compensation"
	TxnCorporateTradePaymentCredit                TransactionCategory = "corporate_trade_payment_credit"
	TxnCorporateTradePaymentDebit                 TransactionCategory = "corporate_trade_payment_debit"
	TxnCorrespondentCollection                    TransactionCategory = "correspondent_collection"
	TxnCorrespondentCollectionAdjustment          TransactionCategory = "correspondent_collection_adjustment"
	TxnCorrespondentCollectionDebit               TransactionCategory = "correspondent_collection_debit"
	TxnCouponCollectionDebit                      TransactionCategory = "coupon_collection_debit"
	TxnCouponCollectionsBanks                     TransactionCategory = "coupon_collections_banks"
	TxnCredit                                     TransactionCategory = "credit"
	TxnCreditAdjustment                           TransactionCategory = "credit_adjustment"
	TxnCreditReversal                             TransactionCategory = "credit_reversal"
	TxnCumulativeChecksPaid                       TransactionCategory = "cumulative_checks_paid"
	TxnCumulativeCredits                          TransactionCategory = "cumulative_credits"
	TxnCumulativeDebits                           TransactionCategory = "cumulative_debits"
	TxnCumulativeZbaDebits                        TransactionCategory = "cumulative_zba_debits"
	TxnCumulativeZbaOrDisbursementCredits         TransactionCategory = "cumulative_zba_or_disbursement_credits"
	TxnCurrencyAndCoinDeposited                   TransactionCategory = "currency_and_coin_deposited"
	TxnCurrencyAndCoinShipped                     TransactionCategory = "currency_and_coin_shipped"
	TxnCustom                                     TransactionCategory = "custom"
	TxnCustomerPayroll                            TransactionCategory = "customer_payroll"
	TxnCustomerTerminalInitiatedMoneyTransfer     TransactionCategory = "customer_terminal_initiated_money_transfer"
	TxnDebitAdjustment                            TransactionCategory = "debit_adjustment"
	TxnDebitAnyType                               TransactionCategory = "debit_any_type"
	TxnDebitReversal                              TransactionCategory = "debit_reversal"
	TxnDepositCorrection                          TransactionCategory = "deposit_correction"
	TxnDepositCorrectionDebit                     TransactionCategory = "deposit_correction_debit"
	TxnDepositReversal                            TransactionCategory = "deposit_reversal"
	TxnDepositedItemReturned                      TransactionCategory = "deposited_item_returned"
	TxnDomesticCollection                         TransactionCategory = "domestic_collection"
	TxnDraft                                      TransactionCategory = "draft"
	TxnDraftDeposit                               TransactionCategory = "draft_deposit"
	TxnDtcConcentrationCredit                     TransactionCategory = "dtc_concentration_credit"
	TxnDtcDebit                                   TransactionCategory = "dtc_debit"
	TxnEdiTransactionCredit                       TransactionCategory = "edi_transaction_credit"
	TxnEdiTransactionDebit                        TransactionCategory = "edi_transaction_debit"
	TxnEdibanxCreditReceived                      TransactionCategory = "edibanx_credit_received"
	TxnEdibanxCreditReturn                        TransactionCategory = "edibanx_credit_return"
	TxnEdibanxReturnItemDebit                     TransactionCategory = "edibanx_return_item_debit"
	TxnEdibanxSettlementDebit                     TransactionCategory = "edibanx_settlement_debit"
	TxnFedFundsPurchased                          TransactionCategory = "fed_funds_purchased"
	TxnFedFundsSold                               TransactionCategory = "fed_funds_sold"
	TxnFederalReserveBankCommercialBankDebit      TransactionCategory = "federal_reserve_bank_commercial_bank_debit"
	TxnFederalReserveBankLetterDebit              TransactionCategory = "federal_reserve_bank_letter_debit"
	TxnFloatAdjustment                            TransactionCategory = "float_adjustment"
	TxnFoodStampAdjustment                        TransactionCategory = "food_stamp_adjustment"
	TxnFoodStampLetter                            TransactionCategory = "food_stamp_letter"
	TxnForeignCheckPurchase                       TransactionCategory = "foreign_check_purchase"
	TxnForeignChecksDeposited                     TransactionCategory = "foreign_checks_deposited"
	TxnForeignChecksPaid                          TransactionCategory = "foreign_checks_paid"
	TxnForeignCollectionCredit                    TransactionCategory = "foreign_collection_credit"
	TxnForeignCollectionDebit                     TransactionCategory = "foreign_collection_debit"
	TxnForeignExchangeDebit                       TransactionCategory = "foreign_exchange_debit"
	TxnForeignExchangeOfCredit                    TransactionCategory = "foreign_exchange_of_credit"
	TxnForeignLetterOfCredit                      TransactionCategory = "foreign_letter_of_credit"
	TxnForeignRemittanceCredit                    TransactionCategory = "foreign_remittance_credit"
	TxnForeignRemittanceDebit                     TransactionCategory = "foreign_remittance_debit"
	TxnFrbCashLetterAutoChargeAdjustment          TransactionCategory = "frb_cash_letter_auto_charge_adjustment"
	TxnFrbCashLetterAutoChargeCredit              TransactionCategory = "frb_cash_letter_auto_charge_credit"
	TxnFrbCashLetterAutoChargeDebit               TransactionCategory = "frb_cash_letter_auto_charge_debit"
	TxnFrbFineSortAdjustment                      TransactionCategory = "frb_fine_sort_adjustment"
	TxnFrbFineSortCashLetterCredit                TransactionCategory = "frb_fine_sort_cash_letter_credit"
	TxnFrbFineSortCashLetterDebit                 TransactionCategory = "frb_fine_sort_cash_letter_debit"
	TxnFrbGovernmentCheckAdjustment               TransactionCategory = "frb_government_check_adjustment"
	TxnFrbGovernmentChecksCashLetterCredit        TransactionCategory = "frb_government_checks_cash_letter_credit"
	TxnFrbGovernmentChecksCashLetterDebit         TransactionCategory = "frb_government_checks_cash_letter_debit"
	TxnFrbPostalMoneyOrderAdjustment              TransactionCategory = "frb_postal_money_order_adjustment"
	TxnFrbPostalMoneyOrderCredit                  TransactionCategory = "frb_postal_money_order_credit"
	TxnFrbPostalMoneyOrderDebit                   TransactionCategory = "frb_postal_money_order_debit"
	TxnFrbStatementRecap                          TransactionCategory = "frb_statement_recap"
	TxnFreightPaymentCredit                       TransactionCategory = "freight_payment_credit"
	TxnFreightPaymentDebit                        TransactionCategory = "freight_payment_debit"
	TxnFuturesCredit                              TransactionCategory = "futures_credit"
	TxnFuturesDebit                               TransactionCategory = "futures_debit"
	TxnIncomingMoneyTransfer                      TransactionCategory = "incoming_money_transfer"
	TxnIndividualAchReturnItem                    TransactionCategory = "individual_ach_return_item"
	TxnIndividualAutomaticTransferCredit          TransactionCategory = "individual_automatic_transfer_credit"
	TxnIndividualAutomaticTransferDebit           TransactionCategory = "individual_automatic_transfer_debit"
	TxnIndividualBackValueCredit                  TransactionCategory = "individual_back_value_credit"
	TxnIndividualBackValueDebit                   TransactionCategory = "individual_back_value_debit"
	TxnIndividualBankCardDeposit                  TransactionCategory = "individual_bank_card_deposit"
	TxnIndividualCollectionCredit                 TransactionCategory = "individual_collection_credit"
	TxnIndividualControlledDisbursingCredit       TransactionCategory = "individual_controlled_disbursing_credit"
	TxnIndividualControlledDisbursingDebit        TransactionCategory = "individual_controlled_disbursing_debit"
	TxnIndividualDtcDisbursingCredit              TransactionCategory = "individual_dtc_disbursing_credit"
	TxnIndividualEscrowCredit                     TransactionCategory = "individual_escrow_credit"
	TxnIndividualEscrowDebit                      TransactionCategory = "individual_escrow_debit"
	TxnIndividualIncomingInternalMoneyTransfer    TransactionCategory = "individual_incoming_internal_money_transfer"
	TxnIndividualInternationalMoneyTransferCredit TransactionCategory = "individual_international_money_transfer_credit"
	TxnIndividualInternationalMoneyTransferDebits TransactionCategory = "individual_international_money_transfer_debits"
	TxnIndividualInvestmentPurchased              TransactionCategory = "individual_investment_purchased"
	TxnIndividualInvestmentSold                   TransactionCategory = "individual_investment_sold"
	TxnIndividualLoanDeposit                      TransactionCategory = "individual_loan_deposit"
	TxnIndividualLoanPayment                      TransactionCategory = "individual_loan_payment"
	TxnIndividualOutgoingInternalMoneyTransfer    TransactionCategory = "individual_outgoing_internal_money_transfer"
	TxnIndividualRejectedCredit                   TransactionCategory = "individual_rejected_credit"
	TxnIndividualRejectedDebit                    TransactionCategory = "individual_rejected_debit"
	TxnInfo                                       TransactionCategory = "info"
	TxnInterestAdjustmentCredit                   TransactionCategory = "interest_adjustment_credit"
	TxnInterestAdjustmentDebit                    TransactionCategory = "interest_adjustment_debit"
	TxnInterestCredit                             TransactionCategory = "interest_credit"
	TxnInterestDebit                              TransactionCategory = "interest_debit"
	TxnInterestMaturedPrincipalPayment            TransactionCategory = "interest_matured_principal_payment"
	TxnInternationalMoneyMarketTrading            TransactionCategory = "international_money_market_trading"
	TxnItemInAchDeposit                           TransactionCategory = "item_in_ach_deposit"
	TxnItemInAchDisbursementOrDebit               TransactionCategory = "item_in_ach_disbursement_or_debit"
	TxnItemInBrokersDeposit                       TransactionCategory = "item_in_brokers_deposit"
	TxnItemInDtcDeposit                           TransactionCategory = "item_in_dtc_deposit"
	TxnItemInLockboxDeposit                       TransactionCategory = "item_in_lockbox_deposit"
	TxnItemInPacDeposit                           TransactionCategory = "item_in_pac_deposit"
	TxnItemizedCreditOver10000                    TransactionCategory = "itemized_credit_over_10000"
	TxnItemizedDebitOver10000                     TransactionCategory = "itemized_debit_over_10000"
	TxnLetterOfCredit                             TransactionCategory = "letter_of_credit"
	TxnLetterOfCreditDebit                        TransactionCategory = "letter_of_credit_debit"
	TxnListPostDebit                              TransactionCategory = "list_post_debit"
	TxnLoanParticipation                          TransactionCategory = "loan_participation"
	TxnLockboxAdjustmentCredit                    TransactionCategory = "lockbox_adjustment_credit"
	TxnLockboxDebit                               TransactionCategory = "lockbox_debit"
	TxnLockboxDeposit                             TransactionCategory = "lockbox_deposit"
	TxnMaturedFedFundsPurchased                   TransactionCategory = "matured_fed_funds_purchased"
	TxnMaturedRepurchaseOrder                     TransactionCategory = "matured_repurchase_order"
	TxnMaturedReverseRepurchaseOrder              TransactionCategory = "matured_reverse_repurchase_order"
	TxnMaturityOfDebtSecurity                     TransactionCategory = "maturity_of_debt_security"
	TxnMiscellaneousAchCredit                     TransactionCategory = "miscellaneous_ach_credit"
	TxnMiscellaneousAchDebit                      TransactionCategory = "miscellaneous_ach_debit"
	TxnMiscellaneousCredit                        TransactionCategory = "miscellaneous_credit"
	TxnMiscellaneousDebit                         TransactionCategory = "miscellaneous_debit"
	TxnMiscellaneousFeeRefund                     TransactionCategory = "miscellaneous_fee_refund"
	TxnMiscellaneousFees                          TransactionCategory = "miscellaneous_fees"
	TxnMiscellaneousInternationalCredit           TransactionCategory = "miscellaneous_international_credit"
	TxnMiscellaneousInternationalDebit            TransactionCategory = "miscellaneous_international_debit"
	TxnMiscellaneousSecurityCredit                TransactionCategory = "miscellaneous_security_credit"
	TxnMiscellaneousSecurityDebit                 TransactionCategory = "miscellaneous_security_debit"
	TxnMoneyTransferAdjustment                    TransactionCategory = "money_transfer_adjustment"
	TxnOtherDeposit                               TransactionCategory = "other_deposit"
	TxnOutgoingMoneyTransfer                      TransactionCategory = "outgoing_money_transfer"
	TxnOverdraft                                  TransactionCategory = "overdraft"
	TxnOverdraftFee                               TransactionCategory = "overdraft_fee"
	TxnPayableThroughDraft                        TransactionCategory = "payable_through_draft"
	TxnPostingErrorCorrectionCredit               TransactionCategory = "posting_error_correction_credit"
	TxnPostingErrorCorrectionDebit                TransactionCategory = "posting_error_correction_debit"
	TxnPreauthorizedAchCredit                     TransactionCategory = "preauthorized_ach_credit"
	TxnPreauthorizedAchDebit                      TransactionCategory = "preauthorized_ach_debit"
	TxnPreauthorizedDraftCredit                   TransactionCategory = "preauthorized_draft_credit"
	TxnPrincipalPaymentsCredit                    TransactionCategory = "principal_payments_credit"
	TxnPrincipalPaymentsDebit                     TransactionCategory = "principal_payments_debit"
	TxnPurchaseOfDebtSecurities                   TransactionCategory = "purchase_of_debt_securities"
	TxnPurchaseOfEquitySecurities                 TransactionCategory = "purchase_of_equity_securities"
	TxnRePresentedCheckDeposit                    TransactionCategory = "re_presented_check_deposit"
	TxnRegularCollectionDebit                     TransactionCategory = "regular_collection_debit"
	TxnReturnItem                                 TransactionCategory = "return_item"
	TxnReturnItemAdjustment                       TransactionCategory = "return_item_adjustment"
	TxnReturnItemFee                              TransactionCategory = "return_item_fee"
	TxnSaleOfDebtSecurity                         TransactionCategory = "sale_of_debt_security"
	TxnSaleOfEquitySecurity                       TransactionCategory = "sale_of_equity_security"
	TxnSavingsBondLetterOrAdjustment              TransactionCategory = "savings_bond_letter_or_adjustment"
	TxnSavingsBondsSalesAdjustment                TransactionCategory = "savings_bonds_sales_adjustment"
	TxnSecuritiesPurchased                        TransactionCategory = "securities_purchased"
	TxnSecuritiesSold                             TransactionCategory = "securities_sold"
	TxnSecurityCollectionDebit                    TransactionCategory = "security_collection_debit"
	TxnStandingOrder                              TransactionCategory = "standing_order"
	TxnSweepInterestIncome                        TransactionCategory = "sweep_interest_income"
	TxnSweepPrincipalBuy                          TransactionCategory = "sweep_principal_buy"
	TxnSweepPrincipalSell                         TransactionCategory = "sweep_principal_sell"
	TxnTransferOfTreasuryCredit                   TransactionCategory = "transfer_of_treasury_credit"
	TxnTransferOfTreasuryDebit                    TransactionCategory = "transfer_of_treasury_debit"
	TxnTreasuryTaxAndLoanCredit                   TransactionCategory = "treasury_tax_and_loan_credit"
	TxnTreasuryTaxAndLoanDebit                    TransactionCategory = "treasury_tax_and_loan_debit"
	TxnTrustCredit                                TransactionCategory = "trust_credit"
	TxnTrustDebit                                 TransactionCategory = "trust_debit"
	TxnUniversalCredit                            TransactionCategory = "universal_credit"
	TxnUniversalDebit                             TransactionCategory = "universal_debit"
	TxnYtdAdjustmentCredit                        TransactionCategory = "ytd_adjustment_credit"
	TxnYtdAdjustmentDebit                         TransactionCategory = "ytd_adjustment_debit"
	TxnZbaCredit                                  TransactionCategory = "zba_credit"
	TxnZbaCreditAdjustment                        TransactionCategory = "zba_credit_adjustment"
	TxnZbaCreditTransfer                          TransactionCategory = "zba_credit_transfer"
	TxnZbaDebit                                   TransactionCategory = "zba_debit"
	TxnZbaDebitAdjustment                         TransactionCategory = "zba_debit_adjustment"
	TxnZbaDebitTransfer                           TransactionCategory = "zba_debit_transfer"
	TxnZbaFloatAdjustment                         TransactionCategory = "zba_float_adjustment"
	TxnUnclassified                               TransactionCategory = "unclassified"
)

var transactionTypes = map[string]transactionEntry{
	"108": {DirectionCredit, TxnCredit},
	"115": {DirectionCredit, TxnLockboxDeposit},
	"116": {DirectionCredit, TxnItemInLockboxDeposit},
	"118": {DirectionCredit, TxnLockboxAdjustmentCredit},
	"121": {DirectionCredit, TxnEdiTransactionCredit},
	"122": {DirectionCredit, TxnEdibanxCreditReceived},
	"123": {DirectionCredit, TxnEdibanxCreditReturn},
	"135": {DirectionCredit, TxnDtcConcentrationCredit},
	"136": {DirectionCredit, TxnItemInDtcDeposit},
	"142": {DirectionCredit, TxnAchCreditReceived},
	"143": {DirectionCredit, TxnItemInAchDeposit},
	"145": {DirectionCredit, TxnAchConcentrationCredit},
	"147": {DirectionCredit, TxnIndividualBankCardDeposit},
	"155": {DirectionCredit, TxnPreauthorizedDraftCredit},
	"156": {DirectionCredit, TxnItemInPacDeposit},
	"164": {DirectionCredit, TxnCorporateTradePaymentCredit},
	"165": {DirectionCredit, TxnPreauthorizedAchCredit},
	"166": {DirectionCredit, TxnAchSettlement},
	"168": {DirectionCredit, TxnAchReturnItemOrAdjustmentSettlement},
	"169": {DirectionCredit, TxnMiscellaneousAchCredit},
	"171": {DirectionCredit, TxnIndividualLoanDeposit},
	"172": {DirectionCredit, TxnDepositCorrection},
	"173": {DirectionCredit, TxnBankPreparedDeposit},
	"174": {DirectionCredit, TxnOtherDeposit},
	"175": {DirectionCredit, TxnCheckDepositPackage},
	"176": {DirectionCredit, TxnRePresentedCheckDeposit},
	"184": {DirectionCredit, TxnDraftDeposit},
	"187": {DirectionCredit, TxnCashLetterCredit},
	"189": {DirectionCredit, TxnCashLetterAdjustment},
	"191": {DirectionCredit, TxnIndividualIncomingInternalMoneyTransfer},
	"195": {DirectionCredit, TxnIncomingMoneyTransfer},
	"196": {DirectionCredit, TxnMoneyTransferAdjustment},
	"198": {DirectionCredit, TxnCompensation},
	"201": {DirectionCredit, TxnIndividualAutomaticTransferCredit},
	"202": {DirectionCredit, TxnBondOperationsCredit},
	"206": {DirectionCredit, TxnBookTransferCredit},
	"208": {DirectionCredit, TxnIndividualInternationalMoneyTransferCredit},
	"212": {DirectionCredit, TxnForeignLetterOfCredit},
	"213": {DirectionCredit, TxnLetterOfCredit},
	"214": {DirectionCredit, TxnForeignExchangeOfCredit},
	"216": {DirectionCredit, TxnForeignRemittanceCredit},
	"218": {DirectionCredit, TxnForeignCollectionCredit},
	"221": {DirectionCredit, TxnForeignCheckPurchase},
	"222": {DirectionCredit, TxnForeignChecksDeposited},
	"224": {DirectionCredit, TxnCommission},
	"226": {DirectionCredit, TxnInternationalMoneyMarketTrading},
	"227": {DirectionCredit, TxnStandingOrder},
	"229": {DirectionCredit, TxnMiscellaneousInternationalCredit},
	"232": {DirectionCredit, TxnSaleOfDebtSecurity},
	"233": {DirectionCredit, TxnSecuritiesSold},
	"234": {DirectionCredit, TxnSaleOfEquitySecurity},
	"235": {DirectionCredit, TxnMaturedReverseRepurchaseOrder},
	"236": {DirectionCredit, TxnMaturityOfDebtSecurity},
	"237": {DirectionCredit, TxnIndividualCollectionCredit},
	"238": {DirectionCredit, TxnCollectionOfDividends},
	"240": {DirectionCredit, TxnCouponCollectionsBanks},
	"241": {DirectionCredit, TxnBankersAcceptances},
	"242": {DirectionCredit, TxnCollectionOfInterestIncome},
	"243": {DirectionCredit, TxnMaturedFedFundsPurchased},
	"244": {DirectionCredit, TxnInterestMaturedPrincipalPayment},
	"246": {DirectionCredit, TxnCommercialPaper},
	"247": {DirectionCredit, TxnCapitalChange},
	"248": {DirectionCredit, TxnSavingsBondsSalesAdjustment},
	"249": {DirectionCredit, TxnMiscellaneousSecurityCredit},
	"252": {DirectionCredit, TxnDebitReversal},
	"254": {DirectionCredit, TxnPostingErrorCorrectionCredit},
	"255": {DirectionCredit, TxnCheckPostedAndReturned},
	"257": {DirectionCredit, TxnIndividualAchReturnItem},
	"258": {DirectionCredit, TxnAchReversalCredit},
	"261": {DirectionCredit, TxnIndividualRejectedCredit},
	"263": {DirectionCredit, TxnOverdraft},
	"266": {DirectionCredit, TxnReturnItem},
	"268": {DirectionCredit, TxnReturnItemAdjustment},
	"274": {DirectionCredit, TxnCumulativeZbaOrDisbursementCredits},
	"275": {DirectionCredit, TxnZbaCredit},
	"276": {DirectionCredit, TxnZbaFloatAdjustment},
	"277": {DirectionCredit, TxnZbaCreditTransfer},
	"278": {DirectionCredit, TxnZbaCreditAdjustment},
	"281": {DirectionCredit, TxnIndividualControlledDisbursingCredit},
	"286": {DirectionCredit, TxnIndividualDtcDisbursingCredit},
	"295": {DirectionCredit, TxnAtmCredit},
	"301": {DirectionCredit, TxnCommercialDeposit},
	"306": {DirectionCredit, TxnFedFundsSold},
	"308": {DirectionCredit, TxnTrustCredit},
	"331": {DirectionCredit, TxnIndividualEscrowCredit},
	"342": {DirectionCredit, TxnBrokerDeposit},
	"344": {DirectionCredit, TxnIndividualBackValueCredit},
	"345": {DirectionCredit, TxnItemInBrokersDeposit},
	"346": {DirectionCredit, TxnSweepInterestIncome},
	"347": {DirectionCredit, TxnSweepPrincipalSell},
	"348": {DirectionCredit, TxnFuturesCredit},
	"349": {DirectionCredit, TxnPrincipalPaymentsCredit},
	"351": {DirectionCredit, TxnIndividualInvestmentSold},
	"353": {DirectionCredit, TxnCashCenterCredit},
	"354": {DirectionCredit, TxnInterestCredit},
	"357": {DirectionCredit, TxnCreditAdjustment},
	"358": {DirectionCredit, TxnYtdAdjustmentCredit},
	"359": {DirectionCredit, TxnInterestAdjustmentCredit},
	"362": {DirectionCredit, TxnCorrespondentCollection},
	"363": {DirectionCredit, TxnCorrespondentCollectionAdjustment},
	"364": {DirectionCredit, TxnLoanParticipation},
	"366": {DirectionCredit, TxnCurrencyAndCoinDeposited},
	"367": {DirectionCredit, TxnFoodStampLetter},
	"368": {DirectionCredit, TxnFoodStampAdjustment},
	"369": {DirectionCredit, TxnClearingSettlementCredit},
	"372": {DirectionCredit, TxnBackValueAdjustment},
	"373": {DirectionCredit, TxnCustomerPayroll},
	"374": {DirectionCredit, TxnFrbStatementRecap},
	"376": {DirectionCredit, TxnSavingsBondLetterOrAdjustment},
	"377": {DirectionCredit, TxnTreasuryTaxAndLoanCredit},
	"378": {DirectionCredit, TxnTransferOfTreasuryCredit},
	"379": {DirectionCredit, TxnFrbGovernmentChecksCashLetterCredit},
	"381": {DirectionCredit, TxnFrbGovernmentCheckAdjustment},
	"382": {DirectionCredit, TxnFrbPostalMoneyOrderCredit},
	"383": {DirectionCredit, TxnFrbPostalMoneyOrderAdjustment},
	"384": {DirectionCredit, TxnFrbCashLetterAutoChargeCredit},
	"386": {DirectionCredit, TxnFrbCashLetterAutoChargeAdjustment},
	"387": {DirectionCredit, TxnFrbFineSortCashLetterCredit},
	"388": {DirectionCredit, TxnFrbFineSortAdjustment},
	"391": {DirectionCredit, TxnUniversalCredit},
	"392": {DirectionCredit, TxnFreightPaymentCredit},
	"393": {DirectionCredit, TxnItemizedCreditOver10000},
	"394": {DirectionCredit, TxnCumulativeCredits},
	"395": {DirectionCredit, TxnCheckReversal},
	"397": {DirectionCredit, TxnFloatAdjustment},
	"398": {DirectionCredit, TxnMiscellaneousFeeRefund},
	"399": {DirectionCredit, TxnMiscellaneousCredit},
	"408": {DirectionDebit, TxnFloatAdjustment},
	"409": {DirectionDebit, TxnDebitAnyType},
	"415": {DirectionDebit, TxnLockboxDebit},
	"421": {DirectionDebit, TxnEdiTransactionDebit},
	"422": {DirectionDebit, TxnEdibanxSettlementDebit},
	"423": {DirectionDebit, TxnEdibanxReturnItemDebit},
	"435": {DirectionDebit, TxnPayableThroughDraft},
	"445": {DirectionDebit, TxnAchConcentrationDebit},
	"447": {DirectionDebit, TxnAchDisbursementFundingDebit},
	"451": {DirectionDebit, TxnAchDebitReceived},
	"452": {DirectionDebit, TxnItemInAchDisbursementOrDebit},
	"455": {DirectionDebit, TxnPreauthorizedAchDebit},
	"462": {DirectionDebit, TxnAccountHolderInitiatedAchDebit},
	"464": {DirectionDebit, TxnCorporateTradePaymentDebit},
	"466": {DirectionDebit, TxnAchSettlement},
	"468": {DirectionDebit, TxnAchReturnItemOrAdjustmentSettlement},
	"469": {DirectionDebit, TxnMiscellaneousAchDebit},
	"472": {DirectionDebit, TxnCumulativeChecksPaid},
	"474": {DirectionDebit, TxnCertifiedCheckDebit},
	"475": {DirectionDebit, TxnCheckPaid},
	"476": {DirectionDebit, TxnFederalReserveBankLetterDebit},
	"477": {DirectionDebit, TxnBankOriginatedDebit},
	"479": {DirectionDebit, TxnListPostDebit},
	"481": {DirectionDebit, TxnIndividualLoanPayment},
	"484": {DirectionDebit, TxnDraft},
	"485": {DirectionDebit, TxnDtcDebit},
	"487": {DirectionDebit, TxnCashLetterDebit},
	"489": {DirectionDebit, TxnCashLetterAdjustment},
	"491": {DirectionDebit, TxnIndividualOutgoingInternalMoneyTransfer},
	"493": {DirectionDebit, TxnCustomerTerminalInitiatedMoneyTransfer},
	"495": {DirectionDebit, TxnOutgoingMoneyTransfer},
	"496": {DirectionDebit, TxnMoneyTransferAdjustment},
	"498": {DirectionDebit, TxnCompensation},
	"501": {DirectionDebit, TxnIndividualAutomaticTransferDebit},
	"502": {DirectionDebit, TxnBondOperationsDebit},
	"506": {DirectionDebit, TxnBookTransferDebit},
	"508": {DirectionDebit, TxnIndividualInternationalMoneyTransferDebits},
	"512": {DirectionDebit, TxnLetterOfCreditDebit},
	"513": {DirectionDebit, TxnLetterOfCredit},
	"514": {DirectionDebit, TxnForeignExchangeDebit},
	"516": {DirectionDebit, TxnForeignRemittanceDebit},
	"518": {DirectionDebit, TxnForeignCollectionDebit},
	"522": {DirectionDebit, TxnForeignChecksPaid},
	"524": {DirectionDebit, TxnCommission},
	"526": {DirectionDebit, TxnInternationalMoneyMarketTrading},
	"527": {DirectionDebit, TxnStandingOrder},
	"529": {DirectionDebit, TxnMiscellaneousInternationalDebit},
	"531": {DirectionDebit, TxnSecuritiesPurchased},
	"533": {DirectionDebit, TxnSecurityCollectionDebit},
	"535": {DirectionDebit, TxnPurchaseOfEquitySecurities},
	"538": {DirectionDebit, TxnMaturedRepurchaseOrder},
	"540": {DirectionDebit, TxnCouponCollectionDebit},
	"541": {DirectionDebit, TxnBankersAcceptances},
	"542": {DirectionDebit, TxnPurchaseOfDebtSecurities},
	"543": {DirectionDebit, TxnDomesticCollection},
	"544": {DirectionDebit, TxnInterestMaturedPrincipalPayment},
	"546": {DirectionDebit, TxnCommercialPaper},
	"547": {DirectionDebit, TxnCapitalChange},
	"548": {DirectionDebit, TxnSavingsBondsSalesAdjustment},
	"549": {DirectionDebit, TxnMiscellaneousSecurityDebit},
	"552": {DirectionDebit, TxnCreditReversal},
	"554": {DirectionDebit, TxnPostingErrorCorrectionDebit},
	"555": {DirectionDebit, TxnDepositedItemReturned},
	"557": {DirectionDebit, TxnIndividualAchReturnItem},
	"558": {DirectionDebit, TxnAchReversalDebit},
	"561": {DirectionDebit, TxnIndividualRejectedDebit},
	"563": {DirectionDebit, TxnOverdraft},
	"564": {DirectionDebit, TxnOverdraftFee},
	"566": {DirectionDebit, TxnReturnItem},
	"567": {DirectionDebit, TxnReturnItemFee},
	"568": {DirectionDebit, TxnReturnItemAdjustment},
	"574": {DirectionDebit, TxnCumulativeZbaDebits},
	"575": {DirectionDebit, TxnZbaDebit},
	"577": {DirectionDebit, TxnZbaDebitTransfer},
	"578": {DirectionDebit, TxnZbaDebitAdjustment},
	"581": {DirectionDebit, TxnIndividualControlledDisbursingDebit},
	"595": {DirectionDebit, TxnAtmDebit},
	"597": {DirectionDebit, TxnArpDebit},
	"616": {DirectionDebit, TxnFederalReserveBankCommercialBankDebit},
	"622": {DirectionDebit, TxnBrokerDebit},
	"627": {DirectionDebit, TxnFedFundsPurchased},
	"629": {DirectionDebit, TxnCashCenterDebit},
	"631": {DirectionDebit, TxnDebitAdjustment},
	"633": {DirectionDebit, TxnTrustDebit},
	"634": {DirectionDebit, TxnYtdAdjustmentDebit},
	"641": {DirectionDebit, TxnIndividualEscrowDebit},
	"644": {DirectionDebit, TxnIndividualBackValueDebit},
	"651": {DirectionDebit, TxnIndividualInvestmentPurchased},
	"654": {DirectionDebit, TxnInterestDebit},
	"656": {DirectionDebit, TxnSweepPrincipalBuy},
	"657": {DirectionDebit, TxnFuturesDebit},
	"658": {DirectionDebit, TxnPrincipalPaymentsDebit},
	"659": {DirectionDebit, TxnInterestAdjustmentDebit},
	"661": {DirectionDebit, TxnAccountAnalysisFee},
	"662": {DirectionDebit, TxnCorrespondentCollectionDebit},
	"663": {DirectionDebit, TxnCorrespondentCollectionAdjustment},
	"664": {DirectionDebit, TxnLoanParticipation},
	"666": {DirectionDebit, TxnCurrencyAndCoinShipped},
	"667": {DirectionDebit, TxnFoodStampLetter},
	"668": {DirectionDebit, TxnFoodStampAdjustment},
	"669": {DirectionDebit, TxnClearingSettlementDebit},
	"672": {DirectionDebit, TxnBackValueAdjustment},
	"673": {DirectionDebit, TxnCustomerPayroll},
	"674": {DirectionDebit, TxnFrbStatementRecap},
	"676": {DirectionDebit, TxnSavingsBondLetterOrAdjustment},
	"677": {DirectionDebit, TxnTreasuryTaxAndLoanDebit},
	"678": {DirectionDebit, TxnTransferOfTreasuryDebit},
	"679": {DirectionDebit, TxnFrbGovernmentChecksCashLetterDebit},
	"681": {DirectionDebit, TxnFrbGovernmentCheckAdjustment},
	"682": {DirectionDebit, TxnFrbPostalMoneyOrderDebit},
	"683": {DirectionDebit, TxnFrbPostalMoneyOrderAdjustment},
	"684": {DirectionDebit, TxnFrbCashLetterAutoChargeDebit},
	"686": {DirectionDebit, TxnFrbCashLetterAutoChargeAdjustment},
	"687": {DirectionDebit, TxnFrbFineSortCashLetterDebit},
	"688": {DirectionDebit, TxnFrbFineSortAdjustment},
	"691": {DirectionDebit, TxnUniversalDebit},
	"692": {DirectionDebit, TxnFreightPaymentDebit},
	"693": {DirectionDebit, TxnItemizedDebitOver10000},
	"694": {DirectionDebit, TxnDepositReversal},
	"695": {DirectionDebit, TxnDepositCorrectionDebit},
	"696": {DirectionDebit, TxnRegularCollectionDebit},
	"697": {DirectionDebit, TxnCumulativeDebits},
	"698": {DirectionDebit, TxnMiscellaneousFees},
	"699": {DirectionDebit, TxnMiscellaneousDebit},
	"721": {DirectionCredit, TxnAmountAppliedToInterest},
	"722": {DirectionCredit, TxnAmountAppliedToPrincipal},
	"723": {DirectionCredit, TxnAmountAppliedToEscrow},
	"724": {DirectionCredit, TxnAmountAppliedToLateCharges},
	"725": {DirectionCredit, TxnAmountAppliedToBuydown},
	"726": {DirectionCredit, TxnAmountAppliedToMiscFees},
	"727": {DirectionCredit, TxnAmountAppliedToDeferredInterestDetail},
	"728": {DirectionCredit, TxnAmountAppliedToServiceCharge},
	"890": {DirectionUnclassified, TxnInfo},
}
